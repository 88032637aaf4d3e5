package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"strings"

	_ "image/gif"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Uploaded backgrounds larger than this are downscaled before inlining; the
// export raster never needs more pixels than the supersampled page.
const maxInlineDimension = 2400

// ImageToDataURI reads an uploaded image, downscales oversized ones and
// re-encodes it as a self-contained data URI. No external file reference
// survives into the document; PNG is used when the source may carry
// transparency (signatures, seals), JPEG otherwise.
func ImageToDataURI(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("read uploaded image: %w", err)
	}

	img, format, err := decodeImage(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("decode uploaded image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxInlineDimension || bounds.Dy() > maxInlineDimension {
		img = imaging.Fit(img, maxInlineDimension, maxInlineDimension, imaging.Lanczos)
	}

	var encoded bytes.Buffer
	mime := "image/png"
	switch format {
	case "jpeg":
		mime = "image/jpeg"
		if err := jpeg.Encode(&encoded, img, &jpeg.Options{Quality: 90}); err != nil {
			return "", fmt.Errorf("encode image: %w", err)
		}
	default:
		// png, webp, gif: keep transparency
		if err := png.Encode(&encoded, img); err != nil {
			return "", fmt.Errorf("encode image: %w", err)
		}
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(encoded.Bytes()), nil
}

// DecodeDataURI decodes an inline image payload back into pixels.
func DecodeDataURI(uri string) (image.Image, error) {
	payload := uri
	if idx := strings.Index(uri, ","); idx >= 0 {
		payload = uri[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode inline image payload: %w", err)
	}
	img, _, err := decodeImage(raw)
	return img, err
}

// decodeImage handles png/jpeg/gif via the standard registry and webp
// explicitly, since user-selected files arrive in any of those.
func decodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, format, nil
	}
	if w, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return w, "webp", nil
	}
	return nil, "", err
}
