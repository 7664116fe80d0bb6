package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Businesses() BusinessRepository
	Orders() OrderRepository
	SinkConfigs() SinkConfigRepository
}
