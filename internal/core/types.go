package core

import "gramhaat-backend/internal/model"

type (
	User               = model.User
	Post               = model.Post
	PostFormatted      = model.PostFormatted
	AgriField          = model.AgriField
	AgriFieldFormatted = model.AgriFieldFormatted
	LocalCard          = model.LocalCard
	LocalCardFormatted = model.LocalCardFormatted
	SponsorFormatted   = model.SponsorFormatted
)

const (
	ItemStatusPending = model.ItemStatusPending
	ItemStatusActive  = model.ItemStatusActive
	ItemStatusClosed  = model.ItemStatusClosed
)
