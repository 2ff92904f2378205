package client

import (
	"encoding/base64"

	"github.com/binaryking/mifosx-api/internal/codec"
)

// ImageType identifies the binary format of a client image.
type ImageType int

const (
	// PNG is an image/png payload.
	PNG ImageType = iota

	// JPEG is an image/jpeg payload.
	JPEG
)

// MIME returns the media type used in the image data URI.
func (t ImageType) MIME() string {
	switch t {
	case JPEG:
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// Image is a client profile image. The platform consumes images as base64
// data URIs; the SDK treats the binary payload as opaque.
type Image struct {
	data      []byte
	imageType ImageType
}

// NewImage creates an Image from raw encoded bytes and their format.
func NewImage(data []byte, imageType ImageType) *Image {
	return &Image{data: data, imageType: imageType}
}

// DataURI renders the image in the platform's upload wire shape:
// "data:<mime>;base64,<payload>".
func (i *Image) DataURI() string {
	return "data:" + i.imageType.MIME() + ";base64," + base64.StdEncoding.EncodeToString(i.data)
}

func (i *Image) validate() error {
	if i == nil || len(i.data) == 0 {
		return codec.Invalidf("image data cannot be empty")
	}
	return nil
}
