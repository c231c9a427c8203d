package apierrors

const (
	MsgInvalidPayload = "invalidPayload"
	MsgInvalidID      = "invalidID"
	MsgInternalError  = "internalError"

	MsgUnauthenticated    = "unauthenticated"
	MsgInvalidCredentials = "invalidCredentials"
	MsgTooManyAttempts    = "tooManyAttempts"
	MsgUserDisabled       = "userDisabled"
	MsgPermissionDenied   = "permissionDenied"
	MsgUsernameTaken      = "usernameTaken"
	MsgEmailTaken         = "emailTaken"
	MsgOwnerSelfUpdate    = "ownerSelfUpdate"

	MsgUserNotFound    = "userNotFound"
	MsgProjectNotFound = "projectNotFound"
	MsgColumnNotFound  = "columnNotFound"
	MsgTaskNotFound    = "taskNotFound"
	MsgCommentNotFound = "commentNotFound"

	MsgEmptyComment     = "emptyComment"
	MsgEmptyReorder     = "emptyReorder"
	MsgReorderScope     = "reorderScope"
	MsgCrossProjectMove = "crossProjectMove"
)
