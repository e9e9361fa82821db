package search

import (
	"fmt"
)

type Tier string

const (
	TierDistrict Tier = "district"
	TierTaluka   Tier = "taluka"
	TierVillage  Tier = "village"
)

type LocationNode struct {
	ID        int64
	Name      string
	LocalName string
	ParentID  int64
	Active    bool
}

// LocationResolver is the narrow read interface the validator consumes;
// implementations return (nil, nil) for an unknown id and an error only
// when the backing store cannot be reached.
type LocationResolver interface {
	District(id int64) (*LocationNode, error)
	Taluka(id int64) (*LocationNode, error)
	Village(id int64) (*LocationNode, error)
}

type ValidatedLocation struct {
	District *LocationNode
	Taluka   *LocationNode
	Village  *LocationNode
}

type memoKey struct {
	tier Tier
	id   int64
}

// ChainValidator validates District → Taluka → Village chains. It memoizes
// lookups for the duration of one composed query and holds no other state,
// so one instance per request, no locking.
type ChainValidator struct {
	res  LocationResolver
	memo map[memoKey]*LocationNode
}

func NewChainValidator(res LocationResolver) *ChainValidator {
	return &ChainValidator{
		res:  res,
		memo: make(map[memoKey]*LocationNode),
	}
}

// ValidateChain resolves the deepest supplied id first and walks upward
// verifying each independently supplied ancestor. Missing ancestors are
// rejected, never inferred: duplicate names across districts mean a taluka
// id alone does not disambiguate.
func (v *ChainValidator) ValidateChain(districtID, talukaID, villageID *int64) (*ValidatedLocation, error) {
	if villageID != nil && talukaID == nil {
		return nil, &InvalidLocationError{Tier: TierTaluka, Reason: "is required once a village is supplied"}
	}
	if talukaID != nil && districtID == nil {
		return nil, &InvalidLocationError{Tier: TierDistrict, Reason: "is required once a taluka is supplied"}
	}

	out := &ValidatedLocation{}

	if villageID != nil {
		node, err := v.resolve(TierVillage, *villageID)
		if err != nil {
			return nil, err
		}
		if node == nil || !node.Active {
			return nil, &InvalidLocationError{Tier: TierVillage, ID: *villageID, Reason: "is unknown or inactive"}
		}
		if node.ParentID != *talukaID {
			return nil, &InvalidLocationError{Tier: TierVillage, ID: *villageID, Reason: "does not belong to the supplied taluka"}
		}
		out.Village = node
	}
	if talukaID != nil {
		node, err := v.resolve(TierTaluka, *talukaID)
		if err != nil {
			return nil, err
		}
		if node == nil || !node.Active {
			return nil, &InvalidLocationError{Tier: TierTaluka, ID: *talukaID, Reason: "is unknown or inactive"}
		}
		if node.ParentID != *districtID {
			return nil, &InvalidLocationError{Tier: TierTaluka, ID: *talukaID, Reason: "does not belong to the supplied district"}
		}
		out.Taluka = node
	}
	if districtID != nil {
		node, err := v.resolve(TierDistrict, *districtID)
		if err != nil {
			return nil, err
		}
		if node == nil || !node.Active {
			return nil, &InvalidLocationError{Tier: TierDistrict, ID: *districtID, Reason: "is unknown or inactive"}
		}
		out.District = node
	}

	return out, nil
}

func (v *ChainValidator) resolve(tier Tier, id int64) (*LocationNode, error) {
	key := memoKey{tier: tier, id: id}
	if node, ok := v.memo[key]; ok {
		return node, nil
	}

	var (
		node *LocationNode
		err  error
	)
	switch tier {
	case TierDistrict:
		node, err = v.res.District(id)
	case TierTaluka:
		node, err = v.res.Taluka(id)
	case TierVillage:
		node, err = v.res.Village(id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s %d: %v", ErrBackendUnavailable, tier, id, err)
	}

	v.memo[key] = node
	return node, nil
}
