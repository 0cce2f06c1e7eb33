package services

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/zapzocket/studio/external/shopapi"
	"github.com/zapzocket/studio/internal/model"
)

const (
	MinPasswordLen    = 8
	MinShopNameLen    = 2
	MinContactLen     = 2
	MinAddressLen     = 10
	MinItemNameLen    = 3
	MinDescriptionLen = 10
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^09[0-9]{9}$`)
)

// VendorBackend is the slice of the shop API the vendor flows need.
type VendorBackend interface {
	VendorSignup(ctx context.Context, req shopapi.VendorSignupRequest) (int64, error)
	SubmitItem(ctx context.Context, req shopapi.ItemSubmissionRequest) (int64, error)
}

// VendorService validates vendor forms and forwards them to the backend.
// Validation failures are *ValidationError and never reach the backend.
type VendorService struct {
	api VendorBackend
	log *zap.Logger
}

func NewVendorService(api VendorBackend, log *zap.Logger) *VendorService {
	return &VendorService{api: api, log: log}
}

func (s *VendorService) validateSignup(req model.VendorSignup) error {
	if len(strings.TrimSpace(req.ShopName)) < MinShopNameLen {
		return &ValidationError{Field: "shopName", Message: "shop name must be at least 2 characters"}
	}
	if !emailRegex.MatchString(req.Email) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	if len(req.Password) < MinPasswordLen {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if req.Password != req.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "passwords do not match"}
	}
	if len(strings.TrimSpace(req.ContactPerson)) < MinContactLen {
		return &ValidationError{Field: "contactPerson", Message: "contact person must be at least 2 characters"}
	}
	if !phoneRegex.MatchString(req.PhoneNumber) {
		return &ValidationError{Field: "phoneNumber", Message: "mobile number must look like 09123456789"}
	}
	if len(strings.TrimSpace(req.ShopAddress)) < MinAddressLen {
		return &ValidationError{Field: "shopAddress", Message: "shop address must be at least 10 characters"}
	}
	return nil
}

// Signup registers a new vendor and returns the backend vendor id.
func (s *VendorService) Signup(ctx context.Context, req model.VendorSignup) (int64, error) {
	if err := s.validateSignup(req); err != nil {
		return 0, err
	}

	vendorID, err := s.api.VendorSignup(ctx, shopapi.VendorSignupRequest{
		ShopName:      strings.TrimSpace(req.ShopName),
		Email:         req.Email,
		Password:      req.Password,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		PhoneNumber:   req.PhoneNumber,
		ShopAddress:   strings.TrimSpace(req.ShopAddress),
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("vendor registered", zap.Int64("vendor_id", vendorID), zap.String("shop", req.ShopName))
	return vendorID, nil
}

func (s *VendorService) validateItem(req model.ItemSubmission) error {
	if len(strings.TrimSpace(req.ItemName)) < MinItemNameLen {
		return &ValidationError{Field: "itemName", Message: "item name must be at least 3 characters"}
	}
	if len(strings.TrimSpace(req.Description)) < MinDescriptionLen {
		return &ValidationError{Field: "description", Message: "description must be at least 10 characters"}
	}
	if req.Price <= 0 {
		return &ValidationError{Field: "price", Message: "price must be a positive number"}
	}
	if !ValidCategory(req.Category) {
		return &ValidationError{Field: "category", Message: "unknown category"}
	}
	return nil
}

// SubmitItem puts a vendor's item up for sale and returns the new
// product id.
func (s *VendorService) SubmitItem(ctx context.Context, req model.ItemSubmission) (int64, error) {
	if err := s.validateItem(req); err != nil {
		return 0, err
	}

	productID, err := s.api.SubmitItem(ctx, shopapi.ItemSubmissionRequest{
		ItemName:    strings.TrimSpace(req.ItemName),
		Description: strings.TrimSpace(req.Description),
		Price:       float64(req.Price),
		Category:    req.Category,
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("item submitted", zap.Int64("product_id", productID), zap.String("name", req.ItemName))
	return productID, nil
}
