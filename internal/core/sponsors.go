package core

// SponsorService hands out sponsor cards for a display slot, rotating
// across the active set so impressions spread evenly.
type SponsorService interface {
	NextSponsor(slot string) (*SponsorFormatted, error)
}
