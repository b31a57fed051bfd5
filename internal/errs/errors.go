package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrUserAlreadyExists  = Error("user already exists")
	ErrUserNotFound       = Error("user not found")
	ErrUserIsNil          = Error("user is nil")
	ErrWrongPassword      = Error("wrong password")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidPassword    = Error("invalid password")
	ErrInvalidUser        = Error("invalid user")
	ErrInvalidRole        = Error("invalid role")
	ErrInvalidRequest     = Error("invalid request")
	ErrInvalidParams      = Error("invalid params")
	ErrInvalidPageOrSize  = Error("invalid page or size")
	ErrFirstName          = Error("first name is empty or too short")
	ErrLastName           = Error("last name is empty or too short")
	ErrUnauthorized       = Error("unauthorized")
	ErrForbidden          = Error("forbidden")

	ErrReceiverRequired        = Error("receiver is required")
	ErrEmptyMessageContent     = Error("message content must not be empty")
	ErrSelfMessagingNotAllowed = Error("cannot send a message to yourself")
	ErrMessagingNotAllowed     = Error("you are not allowed to message this user")

	ErrPropertyNotFound     = Error("property not found")
	ErrLandlordRequired     = Error("landlord is required")
	ErrInvalidTenant        = Error("provided tenant is not a valid tenant")
	ErrPropertyAccessDenied = Error("you are not allowed to access this property")

	ErrMaintenanceRequestNotFound = Error("maintenance request not found")
	ErrInvalidMaintenanceStatus   = Error("invalid maintenance status")
	ErrIssueRequired              = Error("property and issue are required")

	ErrFileNotFound             = Error("file not found")
	ErrNoFileUploaded           = Error("no file uploaded")
	ErrUnableToOpenUploadedFile = Error("unable to open uploaded file")
	ErrUnableToUploadFile       = Error("unable to upload file")
	ErrUnableToDeleteFile       = Error("unable to delete file")
	ErrFileAccessDenied         = Error("you are not allowed to access this file")
)
