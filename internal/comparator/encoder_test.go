package comparator

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestOutputFormat(t *testing.T) {
	for path, want := range map[string]string{
		"result.png":          "png",
		"out/RESULT.BMP":      "bmp",
		"result":              "png",
		"dir.d/result.jpeg":   "jpeg",
		"/tmp/a.b/result.Png": "png",
	} {
		if got := OutputFormat(path); got != want {
			t.Errorf("OutputFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNewImageEncoder(t *testing.T) {
	for _, format := range []string{"png", "PNG", "bmp"} {
		if _, err := NewImageEncoder(format); err != nil {
			t.Errorf("NewImageEncoder(%q): %v", format, err)
		}
	}
	if _, err := NewImageEncoder("jpeg"); err == nil {
		t.Error("NewImageEncoder(jpeg) succeeded, want error")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	img := makeTestImage(6, 5)

	pngPath := filepath.Join(dir, "nested", "result.png")
	if err := saveImage(img, pngPath); err != nil {
		t.Fatalf("saveImage png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if got := color.NRGBAModel.Convert(decoded.At(5, 4)).(color.NRGBA); got != img.NRGBAAt(5, 4) {
		t.Errorf("png pixel = %v, want %v", got, img.NRGBAAt(5, 4))
	}

	opaque := image.NewNRGBA(image.Rect(0, 0, 6, 5))
	for i := range opaque.Pix {
		opaque.Pix[i] = 255
	}
	bmpPath := filepath.Join(dir, "result.bmp")
	if err := saveImage(opaque, bmpPath); err != nil {
		t.Fatalf("saveImage bmp: %v", err)
	}
	bf, err := os.Open(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	defer bf.Close()
	decodedBMP, err := bmp.Decode(bf)
	if err != nil {
		t.Fatalf("decode bmp: %v", err)
	}
	if decodedBMP.Bounds() != opaque.Bounds() {
		t.Errorf("bmp bounds = %v, want %v", decodedBMP.Bounds(), opaque.Bounds())
	}

	if err := saveImage(img, filepath.Join(dir, "result.gif")); err == nil {
		t.Error("saveImage accepted an unsupported format")
	}
}
