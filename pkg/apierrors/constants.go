package apierrors

// ErrorNumber identifies a failure kind. The values are part of the public
// contract and must never be renumbered.
type ErrorNumber int

const (
	AlreadyExists ErrorNumber = 1
	TooLarge      ErrorNumber = 2
	IsRequired    ErrorNumber = 3
	AtCapacity    ErrorNumber = 4
	NotFound      ErrorNumber = 5
	TooSmall      ErrorNumber = 6
	NotValid      ErrorNumber = 7
)

const (
	MsgAlreadyExists = "alreadyExists"
	MsgTooLarge      = "tooLarge"
	MsgIsRequired    = "isRequired"
	MsgAtCapacity    = "atCapacity"
	MsgNotFound      = "notFound"
	MsgTooSmall      = "tooSmall"
	MsgNotValid      = "notValid"
)

// Parameter names reported in ErrorResponse.ParameterName.
const (
	ParamTaskName    = "taskName"
	ParamIsCompleted = "isCompleted"
	ParamDueDate     = "dueDate"
	ParamID          = "Id"
	ParamOrderByDate = "orderByDate"
	ParamTaskStatus  = "taskStatus"
)

type description struct {
	msgKey  string
	english string
}

var descriptions = map[ErrorNumber]description{
	AlreadyExists: {MsgAlreadyExists, "The entity already exists"},
	TooLarge:      {MsgTooLarge, "The parameter value is too large"},
	IsRequired:    {MsgIsRequired, "The parameter is required"},
	AtCapacity:    {MsgAtCapacity, "The maximum number of entities have been created. No further entities can be created at this time."},
	NotFound:      {MsgNotFound, "The entity could not be found"},
	TooSmall:      {MsgTooSmall, "The parameter value is too small"},
	NotValid:      {MsgNotValid, "The parameter value is not valid"},
}
