package ui

import (
	"errors"
	"testing"

	"github.com/vanderheijden86/showcase/pkg/config"
	"github.com/vanderheijden86/showcase/pkg/content"
	"github.com/vanderheijden86/showcase/pkg/testutil"
)

func countingPanels(t *testing.T, calls map[SectionID]int) Panels {
	t.Helper()
	builders := make(map[SectionID]PanelFunc, len(sectionOrder))
	for _, id := range sectionOrder {
		builders[id] = func(width int) string {
			calls[id]++
			return "panel:" + string(id)
		}
	}
	p, err := NewPanels(builders)
	if err != nil {
		t.Fatalf("NewPanels: %v", err)
	}
	return p
}

func TestPanelsRenderRunsOnlyActiveBuilder(t *testing.T) {
	calls := make(map[SectionID]int)
	p := countingPanels(t, calls)

	for _, active := range sectionOrder {
		clear(calls)
		out, err := p.Render(active, 80)
		if err != nil {
			t.Fatalf("Render(%q): %v", active, err)
		}
		if out != "panel:"+string(active) {
			t.Errorf("Render(%q) = %q", active, out)
		}
		for _, id := range sectionOrder {
			want := 0
			if id == active {
				want = 1
			}
			if calls[id] != want {
				t.Errorf("active %q: builder %q called %d times, want %d", active, id, calls[id], want)
			}
		}
	}
}

func TestPanelsRenderUnknown(t *testing.T) {
	p := countingPanels(t, make(map[SectionID]int))
	if _, err := p.Render("unknown-tab", 80); !errors.Is(err, ErrInvalidSection) {
		t.Errorf("expected ErrInvalidSection, got %v", err)
	}
}

func TestNewPanelsRejectsIncompleteTable(t *testing.T) {
	builders := map[SectionID]PanelFunc{
		SectionOverview:       func(int) string { return "" },
		SectionImplementation: func(int) string { return "" },
	}
	if _, err := NewPanels(builders); err == nil {
		t.Error("expected error for missing infrastructure panel")
	}

	builders[SectionInfrastructure] = func(int) string { return "" }
	builders["faq"] = func(int) string { return "" }
	if _, err := NewPanels(builders); !errors.Is(err, ErrInvalidSection) {
		t.Errorf("expected ErrInvalidSection for extra panel, got %v", err)
	}
}

func TestBuildPanelsRequiresKnownSections(t *testing.T) {
	theme := TestTheme()
	md := NewMarkdownRenderer(config.MarkdownNoTTY)

	missing := content.Document{Title: "x", Sections: []content.Section{{ID: "overview"}, {ID: "implementation"}}}
	if _, err := BuildPanels(missing, theme, md); !errors.Is(err, content.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument for missing section, got %v", err)
	}

	extra := content.Document{Title: "x", Sections: []content.Section{
		{ID: "overview"}, {ID: "implementation"}, {ID: "infrastructure"}, {ID: "faq"},
	}}
	if _, err := BuildPanels(extra, theme, md); !errors.Is(err, content.ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument for unknown section, got %v", err)
	}
}

func defaultPanels(t *testing.T) Panels {
	t.Helper()
	doc, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	p, err := BuildPanels(doc, TestTheme(), NewMarkdownRenderer(config.MarkdownNoTTY))
	if err != nil {
		t.Fatalf("BuildPanels: %v", err)
	}
	return p
}

func TestDefaultPanelsContent(t *testing.T) {
	p := defaultPanels(t)

	tests := []struct {
		id     SectionID
		want   []string
		absent []string
	}{
		{
			id:     SectionOverview,
			want:   []string{"Статус проекта", "API Layer (Real)", "ML Core (Real)"},
			absent: []string{"app/worker.py", "docker-compose.yml", "PYTHON", "YAML"},
		},
		{
			id:     SectionImplementation,
			want:   []string{"Ниже приведены", "app/providers/flux.py", "app/worker.py", "PYTHON", "class FluxProvider"},
			absent: []string{"API Layer (Real)", "docker-compose.yml", "Статус проекта"},
		},
		{
			id:     SectionInfrastructure,
			want:   []string{"docker-compose.yml", "YAML", "    command: celery -A app.worker.celery_app worker"},
			absent: []string{"app/worker.py", "API Layer (Real)", "PYTHON"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			out, err := p.Render(tt.id, 100)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertContainsAll(t, out, tt.want...)
			testutil.AssertContainsNone(t, out, tt.absent...)
		})
	}
}

func TestDefaultPanelsFitWidth(t *testing.T) {
	p := defaultPanels(t)
	for _, width := range []int{60, 100} {
		for _, id := range sectionOrder {
			out, err := p.Render(id, width)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertMaxWidth(t, out, width)
		}
	}
}

func TestImplementationBlocksPreserveCode(t *testing.T) {
	p := defaultPanels(t)
	out, err := p.Render(SectionImplementation, 100)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertContainsAll(t, out,
		"│ @celery_app.task(name=\"generate_image_task\", bind=True)",
		"│     loop = asyncio.get_event_loop()",
		"│         if self.pipe is None:",
	)
}
