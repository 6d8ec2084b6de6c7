package services

import (
	"errors"
	"strings"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
)

type ProfileService struct {
	CustomerRepo *repository.CustomerRepository
}

func NewProfileService(cr *repository.CustomerRepository) *ProfileService {
	return &ProfileService{CustomerRepo: cr}
}

// AddressParts is the structured form shown in the profile editor. The
// stored column stays a single free-text field; CombineAddress and
// SplitAddress round-trip it. Commas inside a part corrupt the split,
// which matches the stored format this system inherited.
type AddressParts struct {
	Line    string `json:"addressLine"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

func CombineAddress(p AddressParts) string {
	parts := []string{p.Line, p.City, p.State, p.Pincode, p.Country}
	joined := strings.Join(parts, ", ")
	return strings.Trim(joined, ", ")
}

func SplitAddress(addr string) AddressParts {
	var p AddressParts
	if addr == "" {
		return p
	}
	parts := strings.Split(addr, ", ")
	fields := []*string{&p.Line, &p.City, &p.State, &p.Pincode, &p.Country}
	for i, f := range fields {
		if i < len(parts) {
			*f = parts[i]
		}
	}
	return p
}

type ProfileView struct {
	Customer *entity.Customer `json:"customer"`
	Address  AddressParts     `json:"address"`
}

func (s *ProfileService) Get(userID uint) (*ProfileView, error) {
	customer, err := s.CustomerRepo.GetOrCreateForUser(userID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{Customer: customer, Address: SplitAddress(customer.Address)}, nil
}

type UpdateProfileIn struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`

	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Country     string `json:"country"`
}

func (s *ProfileService) Update(userID uint, in *UpdateProfileIn) (*ProfileView, error) {
	customer, err := s.CustomerRepo.GetOrCreateForUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":  in.Name,
		"email": in.Email,
		"phone": in.Phone,
		"address": CombineAddress(AddressParts{
			Line: in.AddressLine, City: in.City, State: in.State,
			Pincode: in.Pincode, Country: in.Country,
		}),
	}
	if err := s.CustomerRepo.Update(customer.ID, updates); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Avatar upload, base64 payload with a data URI prefix.
func (s *ProfileService) UploadAvatar(userID uint, data []byte, contentType string) error {
	if len(data) > 5*1024*1024 {
		return errors.New("file too large")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("invalid image format")
	}
	customer, err := s.CustomerRepo.GetOrCreateForUser(userID)
	if err != nil {
		return err
	}
	return s.CustomerRepo.Update(customer.ID, map[string]any{
		"avatar":      data,
		"avatar_type": contentType,
	})
}
