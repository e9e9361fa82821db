package core

// DataService is the aggregated data access layer of the marketplace.
type DataService interface {
	UserService

	PostService
	PostManageService

	AgriFieldService

	LocalCardService

	LocationService
	CategoryService
}
