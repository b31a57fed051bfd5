package enums

const (
	ROLE_TENANT   = "tenant"
	ROLE_LANDLORD = "landlord"
	ROLE_ADMIN    = "admin"
)

const (
	PROPERTY_STATUS_AVAILABLE   = "available"
	PROPERTY_STATUS_OCCUPIED    = "occupied"
	PROPERTY_STATUS_MAINTENANCE = "maintenance"
)

const (
	MAINTENANCE_STATUS_PENDING     = "pending"
	MAINTENANCE_STATUS_IN_PROGRESS = "in-progress"
	MAINTENANCE_STATUS_RESOLVED    = "resolved"
)

const (
	FILE_TYPE_LEASE           = "lease"
	FILE_TYPE_PAYMENT_RECEIPT = "payment-receipt"
	FILE_TYPE_MAINTENANCE     = "maintenance"
	FILE_TYPE_OTHER           = "other"
)

const (
	FILE_BUCKET_PROPERTY_DOCUMENTS = "property-documents"
)

const (
	NOTIFICATION_TYPE_MESSAGE             = "message"
	NOTIFICATION_TYPE_PROPERTY_ASSIGNED   = "property_assigned"
	NOTIFICATION_TYPE_MAINTENANCE_REQUEST = "maintenance_request"
	NOTIFICATION_TYPE_FILE_UPLOADED       = "file_uploaded"
	NOTIFICATION_TYPE_PROFILE_UPDATED     = "profile_updated"
	NOTIFICATION_TYPE_USER_DELETED        = "user_deleted"
)
