package components

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

//go:embed assets/logo.txt
var defaultLogoArt string

// SpinMarker is replaced by the current spin glyph wherever it appears in
// logo art.
const SpinMarker = '*'

// logoColor is fixed; the logo does not follow the theme.
const logoColor Color = "#61dafb"

// LogoSpin is the frame set of the logo animation.
var LogoSpin = spinner.Spinner{
	Frames: spinner.Line.Frames,
	FPS:    time.Second / 8,
}

// Asset is an opaque image reference resolved outside the component.
type Asset struct {
	Name string
	Art  string
}

// DefaultLogo returns the embedded logo.
func DefaultLogo() Asset {
	return Asset{Name: "logo.txt", Art: strings.TrimRight(defaultLogoArt, "\n")}
}

// LoadAsset reads a text logo from disk.
func LoadAsset(path string) (Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, apperrors.NewAssetError(path, err)
	}
	art := strings.TrimRight(string(data), "\n")
	if strings.TrimSpace(art) == "" {
		return Asset{}, apperrors.NewAssetError(path, errors.New("asset is empty"))
	}
	return Asset{Name: filepath.Base(path), Art: art}, nil
}

// AnimatedLogo draws an asset with a spinning glyph. The frame is an input,
// not state: frame n always renders the same output, frames wrap around
// forever and frame 0 is where a restarted animation begins.
type AnimatedLogo struct {
	BaseComponent
	asset Asset
	spin  spinner.Spinner
	frame int
}

// NewAnimatedLogo creates a logo for the asset.
func NewAnimatedLogo(asset Asset) *AnimatedLogo {
	return &AnimatedLogo{
		BaseComponent: NewBaseComponent(),
		asset:         asset,
		spin:          LogoSpin,
	}
}

// View renders the logo at its current frame.
func (l *AnimatedLogo) View() string {
	return l.ViewWithContext(UnscopedContext())
}

// ViewWithContext renders the logo. Only the asset and frame matter; the
// theme is ignored.
func (l *AnimatedLogo) ViewWithContext(ctx RenderContext) string {
	glyph := l.Glyph()
	style := l.ComputeStyle(ctx).Foreground(logoColor.Terminal())

	art := l.asset.Art
	if strings.ContainsRune(art, SpinMarker) {
		return style.Render(strings.ReplaceAll(art, string(SpinMarker), glyph))
	}
	if art == "" {
		return style.Render(glyph)
	}
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(art), style.Render(glyph))
}

// Glyph returns the spin glyph of the current frame.
func (l *AnimatedLogo) Glyph() string {
	frames := l.spin.Frames
	if len(frames) == 0 {
		return string(SpinMarker)
	}
	i := l.frame % len(frames)
	if i < 0 {
		i += len(frames)
	}
	return frames[i]
}

// WithFrame sets the animation frame.
func (l *AnimatedLogo) WithFrame(frame int) *AnimatedLogo {
	l.frame = frame
	return l
}

// WithSpinner replaces the frame set.
func (l *AnimatedLogo) WithSpinner(spin spinner.Spinner) *AnimatedLogo {
	l.spin = spin
	return l
}

// Spinner returns the frame set.
func (l *AnimatedLogo) Spinner() spinner.Spinner {
	return l.spin
}

// Frame returns the current frame.
func (l *AnimatedLogo) Frame() int {
	return l.frame
}

// FrameCount returns the number of distinct frames.
func (l *AnimatedLogo) FrameCount() int {
	return len(l.spin.Frames)
}

// Interval returns the time between frames.
func (l *AnimatedLogo) Interval() time.Duration {
	return l.spin.FPS
}
