package usecase

type RouterUseCaseImpl = routerUseCaseImpl

const (
	WriteStatusSuccess     = writeStatusSuccess
	WriteStatusRejected    = writeStatusRejected
	WriteStatusFailure     = writeStatusFailure
	WriteStatusUnnecessary = writeStatusUnnecessary
)
