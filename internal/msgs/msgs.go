package msgs

const (
	MsgOperationSuccessful     = "operation successful"
	MsgOperationFailed         = "operation failed"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgYouMustLoginFirst       = "you must login first"
	MsgMessagesMarkedRead      = "messages marked read"
	MsgPropertyDeleted         = "property deleted"
	MsgUserDeleted             = "user deleted"
	MsgFileDeleted             = "file deleted"
)
