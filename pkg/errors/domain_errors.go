package errors

var (
	// Domain errors — used in usecase/repository
	ErrUsernameTaken      = AlreadyExists("username is already taken")
	ErrProfileNotFound    = NotFound("profile not found")
	ErrInvalidUsername    = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrInvalidDisplayName = InvalidArg("display name cannot be empty")
	ErrTooManyInterests   = InvalidArg("at most 10 interests allowed")
	ErrProfilePrivate     = Forbidden("this profile is private")

	ErrEmptyMessage    = InvalidArg("message cannot be empty")
	ErrMessageTooLong  = InvalidArg("message cannot exceed 500 characters")
	ErrMessageNotFound = NotFound("message not found")
	ErrNotMessageOwner = Forbidden("cannot edit someone else's message")

	ErrSenderBanned = Forbidden("sender is banned")
	ErrSenderMuted  = Forbidden("sender is muted")

	ErrConversationNotFound = NotFound("conversation not found")
	ErrSelfConversation     = InvalidArg("cannot start a conversation with yourself")

	ErrSelfFriendship     = InvalidArg("cannot send a friend request to yourself")
	ErrFriendshipExists   = AlreadyExists("friendship already exists for this pair")
	ErrFriendshipNotFound = NotFound("friendship not found")

	ErrPostNotFound  = NotFound("forum post not found")
	ErrEmptyPostBody = InvalidArg("post title and content are required")
	ErrEmptyReply    = InvalidArg("reply cannot be empty")
	ErrTooManyTags   = InvalidArg("at most 5 tags allowed")

	ErrRoomNotFound = NotFound("voice room not found")
	ErrRoomInactive = FailedPrecondition("voice room is no longer active")

	ErrEventNotFound   = NotFound("event not found")
	ErrEventFull       = FailedPrecondition("event has reached its participant limit")
	ErrNotParticipant  = Forbidden("only event participants can use the event chat")
	ErrInvalidEventEnd = InvalidArg("event must end after it starts")

	ErrInsufficientRole = Forbidden("insufficient role for this action")
	ErrTargetProtected  = Forbidden("target cannot be moderated by this actor")

	ErrSessionMissing = Unauthorized("no active session")
	ErrInvalidToken   = Unauthorized("invalid or expired token")
)

func ErrModLogFailed(cause error) error {
	return Wrap(CodeInternal, "moderation action applied but log write failed", cause)
}
