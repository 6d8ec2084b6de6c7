package services

import (
	"testing"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRoundTrip(t *testing.T) {
	parts := AddressParts{
		Line:    "12 MG Road",
		City:    "Mangaluru",
		State:   "Karnataka",
		Pincode: "575001",
		Country: "India",
	}
	combined := CombineAddress(parts)
	assert.Equal(t, "12 MG Road, Mangaluru, Karnataka, 575001, India", combined)
	assert.Equal(t, parts, SplitAddress(combined))
}

func TestSplitAddress_PartialAndEmpty(t *testing.T) {
	p := SplitAddress("12 MG Road, Mangaluru")
	assert.Equal(t, "12 MG Road", p.Line)
	assert.Equal(t, "Mangaluru", p.City)
	assert.Empty(t, p.State)

	assert.Equal(t, AddressParts{}, SplitAddress(""))
}

func TestCombineAddress_SkipsTrailingEmpties(t *testing.T) {
	combined := CombineAddress(AddressParts{Line: "12 MG Road"})
	assert.Equal(t, "12 MG Road", combined)
}

func TestProfileUpdate(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "profile@example.com")
	svc := NewProfileService(repository.NewCustomerRepository(f.db))

	view, err := svc.Update(user.ID, &UpdateProfileIn{
		Name:        "Arjun K",
		Email:       "arjun@example.com",
		Phone:       "9876543210",
		AddressLine: "12 MG Road",
		City:        "Mangaluru",
		State:       "Karnataka",
		Pincode:     "575001",
		Country:     "India",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arjun K", view.Customer.Name)
	assert.Equal(t, "Mangaluru", view.Address.City)
	assert.Equal(t, "12 MG Road, Mangaluru, Karnataka, 575001, India", view.Customer.Address)
}
