package domain

// QuoteRequest is a swap intent the router finds routes for.
type QuoteRequest struct {
	ChainID  ChainID
	TokenIn  Token
	TokenOut Token

	// Amount is the fixed side of the trade: token in for exact input, token out for exact output.
	Amount    CurrencyAmount
	TradeType TradeType
	Protocols []Protocol

	// BlockNumber is the block the routes are searched at.
	BlockNumber uint64
}

// QuoteToken returns the token whose amount is quoted.
func (r QuoteRequest) QuoteToken() Token {
	return r.TradeType.QuoteToken(r.TokenIn, r.TokenOut)
}

// Validate validates the quote request.
func (r QuoteRequest) Validate() error {
	if err := ValidateInputTokens(r.TokenIn, r.TokenOut); err != nil {
		return err
	}

	if !r.TradeType.IsValid() {
		return InvalidTradeTypeError{TradeType: r.TradeType.String()}
	}

	if r.Amount.Raw == nil || r.Amount.Raw.IsZero() {
		return InvalidAmountError{Amount: r.Amount.String(), Err: ErrBadParamInput}
	}

	return nil
}

// RouteResult is the outcome of a route lookup.
type RouteResult struct {
	Candidates []RouteCandidate

	// FromCache is true if the candidates were served from the route cache.
	FromCache bool

	// CacheMode is the cache mode the lookup ran with.
	CacheMode   CacheMode
	BlockNumber uint64
}

// RouterOptions controls how the router uses the route cache.
type RouterOptions struct {
	UseCachedRoutes        bool
	WriteToCachedRoutes    bool
	OptimisticCachedRoutes bool
	// OverwriteCacheMode, if set, replaces the decided cache mode.
	OverwriteCacheMode CacheMode
}

// RouterOption configures the router options.
type RouterOption func(*RouterOptions)

// DefaultRouterOptions returns the router options derived from the config.
func DefaultRouterOptions(config RouterConfig) RouterOptions {
	return RouterOptions{
		UseCachedRoutes:        config.UseCachedRoutes,
		WriteToCachedRoutes:    config.WriteToCachedRoutes,
		OptimisticCachedRoutes: config.OptimisticCachedRoutes,
	}
}

// WithUseCachedRoutes configures whether the route cache is read.
func WithUseCachedRoutes(useCachedRoutes bool) RouterOption {
	return func(o *RouterOptions) {
		o.UseCachedRoutes = useCachedRoutes
	}
}

// WithWriteToCachedRoutes configures whether freshly searched routes are cached.
func WithWriteToCachedRoutes(writeToCachedRoutes bool) RouterOption {
	return func(o *RouterOptions) {
		o.WriteToCachedRoutes = writeToCachedRoutes
	}
}

// WithOptimisticCachedRoutes configures whether cached routes are served for blocks after the one they were cached at.
func WithOptimisticCachedRoutes(optimistic bool) RouterOption {
	return func(o *RouterOptions) {
		o.OptimisticCachedRoutes = optimistic
	}
}

// WithOverwriteCacheMode forces the cache mode of the lookup.
func WithOverwriteCacheMode(cacheMode CacheMode) RouterOption {
	return func(o *RouterOptions) {
		o.OverwriteCacheMode = cacheMode
	}
}
