package draft

import "errors"

// MaxImages is the most images a single product can hold.
const MaxImages = 5

var ErrImageLimitReached = errors.New("a product can hold at most 5 images")

// AddImage appends a data-URI encoded image. Once MaxImages are present the
// add is refused and the draft is left unchanged; the caller surfaces the
// limit to the user rather than truncating silently.
func (d *Draft) AddImage(dataURI string) error {
	if len(d.Images) >= MaxImages {
		return ErrImageLimitReached
	}
	d.Images = append(d.Images, dataURI)
	return nil
}

// RemoveImage deletes the image at index i, shifting later entries down.
func (d *Draft) RemoveImage(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	d.Images = append(d.Images[:i], d.Images[i+1:]...)
}
