package search

import (
	"errors"
	"testing"
)

type fakeResolver struct {
	districts map[int64]*LocationNode
	talukas   map[int64]*LocationNode
	villages  map[int64]*LocationNode

	calls int
	err   error
}

func (f *fakeResolver) District(id int64) (*LocationNode, error) {
	f.calls++
	return f.districts[id], f.err
}

func (f *fakeResolver) Taluka(id int64) (*LocationNode, error) {
	f.calls++
	return f.talukas[id], f.err
}

func (f *fakeResolver) Village(id int64) (*LocationNode, error) {
	f.calls++
	return f.villages[id], f.err
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		districts: map[int64]*LocationNode{
			5: {ID: 5, Name: "Pune", LocalName: "पुणे", Active: true},
			7: {ID: 7, Name: "Nashik", LocalName: "नाशिक", Active: true},
			9: {ID: 9, Name: "Old District", Active: false},
		},
		talukas: map[int64]*LocationNode{
			21: {ID: 21, Name: "Haveli", ParentID: 5, Active: true},
			33: {ID: 33, Name: "Sinnar", ParentID: 7, Active: true},
		},
		villages: map[int64]*LocationNode{
			101: {ID: 101, Name: "Wagholi", ParentID: 21, Active: true},
			202: {ID: 202, Name: "Gone Village", ParentID: 21, Active: false},
		},
	}
}

func locationTier(t *testing.T, err error) Tier {
	t.Helper()
	var locErr *InvalidLocationError
	if !errors.As(err, &locErr) {
		t.Fatalf("err = %v, want InvalidLocationError", err)
	}
	return locErr.Tier
}

func TestValidateChainFullChain(t *testing.T) {
	v := NewChainValidator(newFakeResolver())
	got, err := v.ValidateChain(i64(5), i64(21), i64(101))
	if err != nil {
		t.Fatalf("valid chain rejected: %v", err)
	}
	if got.District.ID != 5 || got.Taluka.ID != 21 || got.Village.ID != 101 {
		t.Errorf("resolved chain = %+v", got)
	}
}

func TestValidateChainDistrictOnly(t *testing.T) {
	v := NewChainValidator(newFakeResolver())
	got, err := v.ValidateChain(i64(7), nil, nil)
	if err != nil {
		t.Fatalf("district-only filter rejected: %v", err)
	}
	if got.District.Name != "Nashik" || got.Taluka != nil || got.Village != nil {
		t.Errorf("resolved = %+v", got)
	}
}

func TestValidateChainRejections(t *testing.T) {
	for _, tc := range []struct {
		name                      string
		district, taluka, village *int64
		wantTier                  Tier
	}{
		{"taluka of another district", i64(5), i64(33), nil, TierTaluka},
		{"taluka without district", nil, i64(21), nil, TierDistrict},
		{"village without taluka", i64(5), nil, i64(101), TierTaluka},
		{"unknown district", i64(404), nil, nil, TierDistrict},
		{"inactive district", i64(9), nil, nil, TierDistrict},
		{"unknown taluka", i64(5), i64(404), nil, TierTaluka},
		{"unknown village", i64(5), i64(21), i64(404), TierVillage},
		{"inactive village", i64(5), i64(21), i64(202), TierVillage},
		{"village of another taluka", i64(7), i64(33), i64(101), TierVillage},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := NewChainValidator(newFakeResolver())
			_, err := v.ValidateChain(tc.district, tc.taluka, tc.village)
			if err == nil {
				t.Fatal("chain accepted, want rejection")
			}
			if tier := locationTier(t, err); tier != tc.wantTier {
				t.Errorf("failing tier = %s, want %s", tier, tc.wantTier)
			}
		})
	}
}

func TestValidateChainMemoizes(t *testing.T) {
	res := newFakeResolver()
	v := NewChainValidator(res)
	if _, err := v.ValidateChain(i64(5), i64(21), i64(101)); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	calls := res.calls
	if _, err := v.ValidateChain(i64(5), i64(21), i64(101)); err != nil {
		t.Fatalf("second validation: %v", err)
	}
	if res.calls != calls {
		t.Errorf("second validation hit the resolver again: %d -> %d calls", calls, res.calls)
	}
}

func TestValidateChainBackendError(t *testing.T) {
	res := newFakeResolver()
	res.err = errors.New("connection refused")
	v := NewChainValidator(res)
	_, err := v.ValidateChain(i64(5), nil, nil)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("err = %v, want ErrBackendUnavailable", err)
	}
}
