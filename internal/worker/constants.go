package worker

// Log message constants for worker operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"

	LogMsgGiftResetScheduled = "Next gift counter reset scheduled"
	LogMsgGiftResetStarting  = "Starting daily gift counter reset"
	LogMsgGiftResetCompleted = "Daily gift counter reset completed"
	LogMsgGiftResetFailed    = "Daily gift counter reset failed"
)
