package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
)

const (
	ERROR_INPUT              = "ERROR_INPUT"
	ERROR_INTERNAL_ERROR     = "ERROR_INTERNAL_ERROR"
	ERROR_CREATE             = "ERROR_CREATE"
	ERROR_UPDATE             = "ERROR_UPDATE"
	NOT_FOUND_RECORDS        = "NOT_FOUND_RECORDS"
	NOT_ADMIN                = "NOT_ADMIN"
	MISSING_LOGIN_INPUT      = "MISSING_LOGIN_INPUT"
	INVALID_USERNAME         = "INVALID_USERNAME"
	INVALID_PASSWORD         = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE       = "ACCOUNT_NOT_ACTIVE"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"
)

const (
	SLOT_CONFLICT         = "SLOT_CONFLICT"
	INVALID_DISCOUNT      = "INVALID_DISCOUNT"
	AMOUNT_MISMATCH       = "AMOUNT_MISMATCH"
	SPLIT_MISMATCH        = "SPLIT_MISMATCH"
	WRONG_STATUS          = "WRONG_STATUS"
	MISSING_ONLINE_METHOD = "MISSING_ONLINE_METHOD"
	NOTHING_DUE           = "NOTHING_DUE"
	BOOKING_NOT_FOUND     = "BOOKING_NOT_FOUND"
)

// Cancel reasons recorded on bookings.
const (
	REASON_HOLD_EXPIRED   = "pending hold expired"
	REASON_ADMIN_REJECTED = "rejected by admin"
	REASON_ADMIN_CANCEL   = "cancelled by admin"
)
