package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zapzocket/studio/external/shopapi"
	"github.com/zapzocket/studio/internal/model"
)

type fakeVendorBackend struct {
	signups     []shopapi.VendorSignupRequest
	submissions []shopapi.ItemSubmissionRequest
	err         error
}

func (f *fakeVendorBackend) VendorSignup(ctx context.Context, req shopapi.VendorSignupRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.signups = append(f.signups, req)
	return int64(len(f.signups)), nil
}

func (f *fakeVendorBackend) SubmitItem(ctx context.Context, req shopapi.ItemSubmissionRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.submissions = append(f.submissions, req)
	return int64(len(f.submissions)), nil
}

func validSignup() model.VendorSignup {
	return model.VendorSignup{
		ShopName:        "Central Pet Shop",
		Email:           "shop@example.com",
		Password:        "secret-pass-1",
		ConfirmPassword: "secret-pass-1",
		ContactPerson:   "Ali Rezaei",
		PhoneNumber:     "09123456789",
		ShopAddress:     "12 Azadi Street, Tehran",
	}
}

func TestSignupValid(t *testing.T) {
	backend := &fakeVendorBackend{}
	svc := NewVendorService(backend, zap.NewNop())

	id, err := svc.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, backend.signups, 1)
	assert.Equal(t, "Central Pet Shop", backend.signups[0].ShopName)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.VendorSignup)
		field  string
	}{
		{"short shop name", func(r *model.VendorSignup) { r.ShopName = "x" }, "shopName"},
		{"bad email", func(r *model.VendorSignup) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *model.VendorSignup) { r.Password, r.ConfirmPassword = "short", "short" }, "password"},
		{"password mismatch", func(r *model.VendorSignup) { r.ConfirmPassword = "different-pass" }, "confirmPassword"},
		{"short contact", func(r *model.VendorSignup) { r.ContactPerson = "a" }, "contactPerson"},
		{"bad phone prefix", func(r *model.VendorSignup) { r.PhoneNumber = "08123456789" }, "phoneNumber"},
		{"short phone", func(r *model.VendorSignup) { r.PhoneNumber = "0912345" }, "phoneNumber"},
		{"short address", func(r *model.VendorSignup) { r.ShopAddress = "short" }, "shopAddress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeVendorBackend{}
			svc := NewVendorService(backend, zap.NewNop())
			req := validSignup()
			tt.mutate(&req)

			_, err := svc.Signup(context.Background(), req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Empty(t, backend.signups, "invalid forms must not reach the backend")
		})
	}
}

func TestSignupBackendFailurePropagates(t *testing.T) {
	backend := &fakeVendorBackend{err: &shopapi.HTTPError{Status: 500, Message: "boom"}}
	svc := NewVendorService(backend, zap.NewNop())

	_, err := svc.Signup(context.Background(), validSignup())

	var httpErr *shopapi.HTTPError
	require.ErrorAs(t, err, &httpErr)
}

func TestSubmitItemValid(t *testing.T) {
	backend := &fakeVendorBackend{}
	svc := NewVendorService(backend, zap.NewNop())

	id, err := svc.SubmitItem(context.Background(), model.ItemSubmission{
		ItemName:    "Adult Cat Dry Food",
		Description: "Complete dry food for adult cats",
		Price:       250000,
		Category:    "cat",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, backend.submissions, 1)
	assert.Equal(t, float64(250000), backend.submissions[0].Price)
}

func TestSubmitItemValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   model.ItemSubmission
		field string
	}{
		{"short name", model.ItemSubmission{ItemName: "ab", Description: "long enough description", Price: 100, Category: "dog"}, "itemName"},
		{"short description", model.ItemSubmission{ItemName: "Dog Leash", Description: "short", Price: 100, Category: "dog"}, "description"},
		{"zero price", model.ItemSubmission{ItemName: "Dog Leash", Description: "long enough description", Price: 0, Category: "dog"}, "price"},
		{"negative price", model.ItemSubmission{ItemName: "Dog Leash", Description: "long enough description", Price: -5, Category: "dog"}, "price"},
		{"unknown category", model.ItemSubmission{ItemName: "Dog Leash", Description: "long enough description", Price: 100, Category: "dragon"}, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVendorService(&fakeVendorBackend{}, zap.NewNop())

			_, err := svc.SubmitItem(context.Background(), tt.req)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
