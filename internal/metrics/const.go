package metrics

const Namespace = "storefront_gateway"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	CacheOperationTypeGet          = "get"
	CacheOperationTypeSet          = "set"
	CacheOperationTypeListAll      = "list_all"
	CacheOperationTypeDelete       = "delete"
	CacheOperationTypePurge        = "purge"
	CacheOperationTypeCountEntries = "count_entries"
)

const (
	SessionRejectMissing = "missing"
	SessionRejectInvalid = "invalid"
)
