package canvas

// Frame keeps the canvas dimensions in sync with the screen size and aspect
// ratio they are derived from.
type Frame struct {
	Screen     *Size
	Ratio      AspectRatio
	Dimensions Size
}

func NewFrame() *Frame {
	return &Frame{Ratio: Landscape, Dimensions: Fallback}
}

// SetAspectRatio re-derives the dimensions. On error the frame is unchanged.
func (f *Frame) SetAspectRatio(r AspectRatio) error {
	dims, err := Recalc(f.Screen, r)
	if err != nil {
		return err
	}
	if f.Screen == nil {
		if _, _, err := ParseAspectRatio(r); err != nil {
			return err
		}
	}
	f.Ratio, f.Dimensions = r, dims
	return nil
}

// SetScreenSize records a new screen size (nil clears it) and re-derives
// the dimensions. On error the frame is unchanged.
func (f *Frame) SetScreenSize(s *Size) error {
	var screen *Size
	if s != nil {
		c := *s
		screen = &c
	}
	dims, err := Recalc(screen, f.Ratio)
	if err != nil {
		return err
	}
	f.Screen, f.Dimensions = screen, dims
	return nil
}
