// Package session is the single shared implementation behind the product
// compose screens: it owns one draft, routes validation and save outcomes
// to the notifier, and signals the surrounding application when a save
// lands. The page and hook variants of the dashboard both collapse onto
// this type.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zenyors/whizcartt-partner/internal/catalog"
	"github.com/zenyors/whizcartt-partner/internal/domain/draft"
	"github.com/zenyors/whizcartt-partner/internal/lookup"
	"github.com/zenyors/whizcartt-partner/internal/notification"
)

// Session is one product editing session. The draft is owned exclusively
// by the session and discarded on cancel; only Submit can persist it.
type Session struct {
	ID     string
	Draft  *draft.Draft
	store  *catalog.Store
	notify notification.Notifier
	finder lookup.Lookup

	// Done is called with the saved product after a successful submit;
	// the surrounding application decides where to navigate. Optional.
	Done func(*catalog.Product)
}

func New(store *catalog.Store, notifier notification.Notifier, finder lookup.Lookup) *Session {
	return &Session{
		ID:     uuid.New().String(),
		Draft:  draft.New(),
		store:  store,
		notify: notifier,
		finder: finder,
	}
}

// Submit validates the draft and commits it to the catalog. Validation
// failures and save failures notify the user and keep the session (and its
// draft) alive; a successful save notifies, fires Done, and resets the
// session with a fresh empty draft.
func (s *Session) Submit(ctx context.Context) (*catalog.Product, error) {
	if err := s.Draft.ValidateForSubmit(); err != nil {
		switch {
		case errors.Is(err, draft.ErrMissingRequiredField):
			s.notify.Notify("Missing Information", "Product name and price are required.", notification.SeverityError)
		case errors.Is(err, draft.ErrInvalidPrice):
			s.notify.Notify("Invalid Price", "Enter the price as a non-negative number.", notification.SeverityError)
		case errors.Is(err, draft.ErrInvalidDiscount):
			s.notify.Notify("Invalid Discount", "Enter the discount amount as a non-negative number.", notification.SeverityError)
		default:
			s.notify.Notify("Invalid Product", err.Error(), notification.SeverityError)
		}
		return nil, err
	}

	product, err := s.store.Save(ctx, s.Draft)
	if err != nil {
		s.notify.Notify("Save Failed", "The product could not be saved. Please try again.", notification.SeverityError)
		return nil, err
	}

	s.notify.Notify("Product Added", "Your product was added to the catalog.", notification.SeveritySuccess)
	if s.Done != nil {
		s.Done(product)
	}
	s.Draft = draft.New()
	return product, nil
}

// CaptureImage receives one data-URI image from whatever capture source
// the UI wired up (camera, gallery, file picker). A full image set is
// reported to the user and the draft left unchanged.
func (s *Session) CaptureImage(dataURI string) {
	if err := s.Draft.AddImage(dataURI); err != nil {
		s.notify.Notify("Image Limit Reached", "You can add up to 5 images per product.", notification.SeverityError)
	}
}

// ScanBarcode seeds the draft from a scanned barcode. This is a
// best-effort convenience: an unknown code just notifies and changes
// nothing.
func (s *Session) ScanBarcode(rawValue string) {
	if s.finder == nil {
		return
	}
	seed, ok := s.finder.Lookup(rawValue)
	if !ok {
		s.notify.Notify("Not Found", "No product data found for this barcode.", notification.SeverityInfo)
		return
	}

	s.Draft.SetName(seed.Name)
	s.Draft.SetPrice(seed.Price)
	s.Draft.SetDescription(seed.Description)
	if seed.AttributeName != "" {
		s.Draft.AddAttribute()
		i := len(s.Draft.Attributes) - 1
		s.Draft.SetAttributeName(i, seed.AttributeName)
		s.Draft.SetAttributeValue(i, seed.AttributeValue)
	}
	s.notify.Notify("Product Found", "Details were filled in from the barcode.", notification.SeverityInfo)
}

// Cancel discards the draft and starts over. Nothing is persisted.
func (s *Session) Cancel() {
	s.Draft = draft.New()
}
