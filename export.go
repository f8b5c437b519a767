package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrNoFrames = errors.New("nothing to export")

// ExportError reports a failed step of an export.
type ExportError struct {
	Op   string
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Exporter writes frame sequences to files in Dir, or the process temp
// directory when Dir is empty.
type Exporter struct {
	Dir        string
	Background color.Color
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir, Background: color.White}
}

func (e *Exporter) dir() string {
	if e.Dir == "" {
		return os.TempDir()
	}
	return e.Dir
}

func (e *Exporter) uniquePath(ext string) string {
	return filepath.Join(e.dir(), uuid.NewString()+ext)
}

// ExportGIF renders every frame to a temporary PNG, then folds the PNGs one
// by one into a looping GIF with a 1/fps delay, deleting each after use.
// A frame whose temporary image cannot be written or read back becomes a
// blank frame. No temporary file survives the call.
func (e *Exporter) ExportGIF(frames []Frame, size Size, fps int) (string, error) {
	if len(frames) == 0 {
		return "", ErrNoFrames
	}
	w, h := pixelSize(size)

	tmp := make([]string, len(frames))
	defer func() {
		for _, p := range tmp {
			if p != "" {
				os.Remove(p)
			}
		}
	}()
	for i, f := range frames {
		tmp[i] = e.writeFrameImage(f, size)
	}

	out := e.uniquePath(".gif")
	gw, err := createGIF(out, w, h, true)
	if err != nil {
		return "", &ExportError{Op: "create", Path: out, Err: err}
	}
	delay := gifDelay(fps)
	for i := range tmp {
		img := e.readFrameImage(tmp[i], w, h)
		if tmp[i] != "" {
			os.Remove(tmp[i])
			tmp[i] = ""
		}
		if err := gw.AddFrame(img, delay); err != nil {
			gw.abort()
			os.Remove(out)
			return "", &ExportError{Op: "encode", Path: out, Err: err}
		}
	}
	if err := gw.Close(); err != nil {
		os.Remove(out)
		return "", &ExportError{Op: "finalize", Path: out, Err: err}
	}
	log.Printf("exported %d frames to %s", gw.Frames(), out)
	return out, nil
}

// writeFrameImage rasterizes one frame to a temporary PNG and returns its
// path, or "" when the write failed. The raster is dropped on return.
func (e *Exporter) writeFrameImage(f Frame, size Size) string {
	f.Size = size
	img := renderFrame(f, e.Background)
	path := e.uniquePath(".png")
	if err := gg.SavePNG(path, img); err != nil {
		log.Printf("export: frame image %s: %v", path, err)
		os.Remove(path)
		return ""
	}
	return path
}

func (e *Exporter) readFrameImage(path string, w, h int) image.Image {
	if path != "" {
		img, err := gg.LoadPNG(path)
		if err == nil {
			return img
		}
		log.Printf("export: reading frame image %s: %v", path, err)
	}
	blank := gg.NewContext(w, h)
	blank.SetColor(e.Background)
	blank.Clear()
	return blank.Image()
}

// ExportPDF writes one vector page per frame. Eraser strokes are painted in
// the background color since PDF pages have no erase operator.
func (e *Exporter) ExportPDF(frames []Frame, size Size) (string, error) {
	if len(frames) == 0 {
		return "", ErrNoFrames
	}
	pageSize := gofpdf.SizeType{Wd: size.Width, Ht: size.Height}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: pageSize})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	bg := color.NRGBAModel.Convert(e.Background).(color.NRGBA)

	for _, f := range frames {
		pdf.AddPageFormat("P", pageSize)
		for _, s := range f.Visible() {
			c := s.Color
			if s.Kind == StrokeEraser {
				c = bg
				c.A = 255
			}
			pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
			pdf.SetAlpha(float64(c.A)/255, "Normal")
			pdf.SetLineWidth(s.Width)
			drawStrokePDF(pdf, s)
		}
	}
	out := e.uniquePath(".pdf")
	if err := pdf.OutputFileAndClose(out); err != nil {
		os.Remove(out)
		return "", &ExportError{Op: "finalize", Path: out, Err: err}
	}
	log.Printf("exported %d pdf pages to %s", len(frames), out)
	return out, nil
}

func drawStrokePDF(pdf *gofpdf.Fpdf, s Stroke) {
	switch s.Kind {
	case StrokeFreehand, StrokeEraser:
		if len(s.Points) < 2 {
			return
		}
		pdf.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			pdf.LineTo(p.X, p.Y)
		}
		pdf.DrawPath("D")
	case StrokeEllipse:
		r := s.Bounds()
		pdf.Ellipse(r.X+r.Width/2, r.Y+r.Height/2, r.Width/2, r.Height/2, 0, "D")
	case StrokeRectangle:
		r := s.Bounds()
		pdf.Rect(r.X, r.Y, r.Width, r.Height, "D")
	}
}

const (
	sheetColumns   = 4
	sheetThumbW    = 160
	sheetPadding   = 12
	sheetLabelSize = 12.0
)

// ExportSheet writes a PNG contact sheet of numbered frame thumbnails.
func (e *Exporter) ExportSheet(frames []Frame, size Size) (string, error) {
	if len(frames) == 0 {
		return "", ErrNoFrames
	}
	thumbW := sheetThumbW
	thumbH := max(int(float64(thumbW)*size.Height/max(size.Width, 1)), 1)
	cols := min(sheetColumns, len(frames))
	rows := (len(frames) + cols - 1) / cols
	cellH := thumbH + sheetPadding + int(sheetLabelSize)

	dc := gg.NewContext(cols*(thumbW+sheetPadding)+sheetPadding, rows*(cellH+sheetPadding)+sheetPadding)
	dc.SetColor(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return "", fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    sheetLabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for i, f := range frames {
		x := sheetPadding + (i%cols)*(thumbW+sheetPadding)
		y := sheetPadding + (i/cols)*(cellH+sheetPadding)
		f.Size = size
		dc.DrawImage(scaleImage(renderFrame(f, e.Background), thumbW, thumbH), x, y)
		dc.SetColor(color.White)
		labelY := float64(y+thumbH) + (sheetPadding+sheetLabelSize)/2
		dc.DrawStringAnchored(strconv.Itoa(i+1), float64(x+thumbW/2), labelY, 0.5, 0.5)
	}

	out := e.uniquePath(".png")
	if err := dc.SavePNG(out); err != nil {
		os.Remove(out)
		return "", &ExportError{Op: "finalize", Path: out, Err: err}
	}
	return out, nil
}
