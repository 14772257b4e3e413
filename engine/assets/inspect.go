package assets

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spaghettifunk/leek/engine/audio"
	"github.com/spaghettifunk/leek/engine/fonts"
	"github.com/spaghettifunk/leek/engine/math"
	"github.com/spaghettifunk/leek/engine/resources"
	"github.com/spaghettifunk/leek/engine/textures"
)

// CategoryReport summarises one cache for the resource inspector.
type CategoryReport struct {
	Category Category
	Entries  []resources.EntryStats
	// RAM and VRAM are estimates, in bytes.
	RAM  uint64
	VRAM uint64
}

// Inspect reports the content of every cache.
func (m *Manager) Inspect() []CategoryReport {
	texEntries := m.textures.Inspect(func(t *textures.Texture) uint64 { return t.ByteSize() })
	fontEntries := m.fonts.Inspect(func(f *fonts.BitmapFont) uint64 { return f.VRAMSize() })
	soundEntries := m.sounds.Inspect(func(b *audio.Buffer) uint64 { return b.Size() })

	return []CategoryReport{
		{
			Category: CategoryTexture,
			Entries:  texEntries,
			RAM:      uint64(unsafe.Sizeof(textures.Texture{})) * uint64(len(texEntries)),
			VRAM:     sumSizes(texEntries),
		},
		{
			Category: CategoryBitmapFont,
			Entries:  fontEntries,
			RAM:      uint64(unsafe.Sizeof(fonts.BitmapFont{})) * uint64(len(fontEntries)),
			VRAM:     sumSizes(fontEntries),
		},
		{
			Category: CategorySound,
			Entries:  soundEntries,
			RAM:      uint64(unsafe.Sizeof(audio.Buffer{}))*uint64(len(soundEntries)) + sumSizes(soundEntries),
		},
	}
}

func sumSizes(entries []resources.EntryStats) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Size
	}
	return total
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// RenderReport formats inspector reports as text tables.
func RenderReport(reports []CategoryReport) string {
	var sb strings.Builder
	for _, r := range reports {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s cache: %d entries", r.Category, len(r.Entries))))
		sb.WriteString("\n")
		if r.VRAM > 0 {
			sb.WriteString(fmt.Sprintf("Using %s of RAM and %s of VRAM\n", math.FormatBytes(r.RAM), math.FormatBytes(r.VRAM)))
		} else {
			sb.WriteString(fmt.Sprintf("Using %s of RAM\n", math.FormatBytes(r.RAM)))
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Key", "Size", "Strong refs", "Weak refs")
		for _, e := range r.Entries {
			t.Row(
				strings.TrimPrefix(e.Key, "assets/"),
				math.FormatBytes(e.Size),
				fmt.Sprintf("%d", e.Strong),
				fmt.Sprintf("%d", e.Weak),
			)
		}
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
