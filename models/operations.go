package models

// Wire operation names. Every request to the server carries exactly one of
// these in its "operation" field; the adapter exposes one typed method per
// operation so that malformed payloads fail at compile time rather than on
// the wire.
const (
	OpCheckDeviceRegistered = "check_device_registered"
	OpCheckUploadUser       = "check_upload_user_and_device"
	OpGetIDInfo             = "get_id_info"
	OpRegister              = "register"
	OpGetExtraStrings       = "get_extra_strings"
	OpStartUpload           = "start_upload"
	OpStartPreservation     = "start_preservation"
	OpUploadEmptyTables     = "upload_empty_tables"
	OpUploadTable           = "upload_table"
	OpUploadRecord          = "upload_record"
	OpDeleteWhereKeyNot     = "delete_where_key_not"
	OpWhichKeysToSend       = "which_keys_to_send"
	OpEndUpload             = "end_upload"
)
