package errcode

var (
	InvalidLocation     = NewError(20001, "Invalid Location")
	InvalidRange        = NewError(20002, "Invalid Range")
	InvalidPageRequest  = NewError(20003, "Invalid Page Request")
	InvalidCoordinate   = NewError(20004, "Invalid Coordinate")
	GetLocationsFailed  = NewError(20005, "Get Locations Failed")
	GetCategoriesFailed = NewError(20006, "Get Categories Failed")

	GetPostsFailed   = NewError(30001, "Get Posts Failed")
	CreatePostFailed = NewError(30002, "Create Post Failed")
	GetPostFailed    = NewError(30003, "Get Post Failed")
	DeletePostFailed = NewError(30004, "Delete Post Failed")
	NoExistPost      = NewError(30005, "Post Not Found")

	GetAgriFieldsFailed = NewError(60001, "Get AgriFields Failed")

	GetLocalCardsFailed = NewError(70001, "Get LocalCards Failed")

	GetSponsorFailed = NewError(80001, "Get Sponsor Failed")
	NoActiveSponsor  = NewError(80002, "No Active Sponsor")
)
