package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// rcs_route_cache_hits_total
	//
	// counter that measures the number of cached route sets served
	//
	// Has the following labels:
	// * cache_mode - the cache mode of the lookup
	RCSRouteCacheHitsCounterMetricName = "rcs_route_cache_hits_total"

	// rcs_route_cache_misses_total
	//
	// counter that measures the number of lookups with no usable cached route set
	//
	// Has the following labels:
	// * cache_mode - the cache mode of the lookup
	RCSRouteCacheMissesCounterMetricName = "rcs_route_cache_misses_total"

	// rcs_route_cache_expired_total
	//
	// counter that measures the number of cached route sets discarded at read time because they expired
	//
	// Has the following labels:
	// * optimistic - whether the lookup was optimistic
	RCSRouteCacheExpiredCounterMetricName = "rcs_route_cache_expired_total"

	// rcs_route_cache_darkmode_total
	//
	// counter that measures the number of reads and writes refused by darkmode
	//
	// Has the following labels:
	// * operation - get or set
	RCSRouteCacheDarkmodeCounterMetricName = "rcs_route_cache_darkmode_total"

	// rcs_route_cache_storage_errors_total
	//
	// counter that measures the number of storage errors
	//
	// Has the following labels:
	// * operation - get or set
	RCSRouteCacheStorageErrorsCounterMetricName = "rcs_route_cache_storage_errors_total"

	// rcs_route_cache_writes_total
	//
	// counter that measures the outcome of cache writes issued by the router
	//
	// Has the following labels:
	// * status - success, rejected, failure or unnecessary
	RCSRouteCacheWritesCounterMetricName = "rcs_route_cache_writes_total"

	// rcs_route_cache_tapcompare_drift_total
	//
	// counter that measures the number of tapcompare lookups where cached routes differ from fresh routes
	RCSRouteCacheTapcompareDriftCounterMetricName = "rcs_route_cache_tapcompare_drift_total"

	RCSRouteCacheHitsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RCSRouteCacheHitsCounterMetricName,
			Help: "counter that measures the number of cached route sets served",
		},
		[]string{"cache_mode"},
	)

	RCSRouteCacheMissesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RCSRouteCacheMissesCounterMetricName,
			Help: "counter that measures the number of lookups with no usable cached route set",
		},
		[]string{"cache_mode"},
	)

	RCSRouteCacheExpiredCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RCSRouteCacheExpiredCounterMetricName,
			Help: "counter that measures the number of cached route sets discarded at read time because they expired",
		},
		[]string{"optimistic"},
	)

	RCSRouteCacheDarkmodeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RCSRouteCacheDarkmodeCounterMetricName,
			Help: "counter that measures the number of reads and writes refused by darkmode",
		},
		[]string{"operation"},
	)

	RCSRouteCacheStorageErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RCSRouteCacheStorageErrorsCounterMetricName,
			Help: "counter that measures the number of storage errors",
		},
		[]string{"operation"},
	)

	RCSRouteCacheWritesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RCSRouteCacheWritesCounterMetricName,
			Help: "counter that measures the outcome of cache writes issued by the router",
		},
		[]string{"status"},
	)

	RCSRouteCacheTapcompareDriftCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: RCSRouteCacheTapcompareDriftCounterMetricName,
			Help: "counter that measures the number of tapcompare lookups where cached routes differ from fresh routes",
		},
	)
)

func init() {
	prometheus.MustRegister(RCSRouteCacheHitsCounter)
	prometheus.MustRegister(RCSRouteCacheMissesCounter)
	prometheus.MustRegister(RCSRouteCacheExpiredCounter)
	prometheus.MustRegister(RCSRouteCacheDarkmodeCounter)
	prometheus.MustRegister(RCSRouteCacheStorageErrorsCounter)
	prometheus.MustRegister(RCSRouteCacheWritesCounter)
	prometheus.MustRegister(RCSRouteCacheTapcompareDriftCounter)
}
