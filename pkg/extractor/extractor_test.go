package extractor

import (
	"errors"
	"testing"

	"github.com/kataras/figma-icons/pkg/figma"
)

func icon(id, name string, w, h float64) figma.Node {
	return figma.Node{
		ID:                  id,
		Name:                name,
		Type:                figma.TypeComponent,
		AbsoluteBoundingBox: &figma.Rectangle{Width: w, Height: h},
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name    string
		root    *figma.Node
		wantIDs []string
	}{
		{
			name:    "nil root",
			root:    nil,
			wantIDs: []string{},
		},
		{
			name:    "empty document",
			root:    &figma.Node{ID: "0:0", Type: figma.TypeDocument},
			wantIDs: []string{},
		},
		{
			name:    "component as root",
			root:    &figma.Node{ID: "1:1", Type: figma.TypeComponent},
			wantIDs: []string{"1:1"},
		},
		{
			name: "nested containers in document order",
			root: &figma.Node{
				ID:   "0:0",
				Type: figma.TypeDocument,
				Children: []figma.Node{
					{
						ID:   "0:1",
						Type: figma.TypeCanvas,
						Children: []figma.Node{
							icon("1:1", "Add", 24, 24),
							{
								ID:   "2:0",
								Type: figma.TypeFrame,
								Children: []figma.Node{
									{
										ID:   "3:0",
										Type: figma.TypeGroup,
										Children: []figma.Node{
											icon("3:1", "Deep", 16, 16),
										},
									},
									icon("2:1", "Close", 24, 24),
								},
							},
						},
					},
					{
						ID:   "0:2",
						Type: figma.TypeCanvas,
						Children: []figma.Node{
							icon("4:1", "Menu", 32, 32),
						},
					},
				},
			},
			wantIDs: []string{"1:1", "3:1", "2:1", "4:1"},
		},
		{
			name: "components are not walked into",
			root: &figma.Node{
				ID:   "0:0",
				Type: figma.TypeDocument,
				Children: []figma.Node{
					{
						ID:   "1:1",
						Type: figma.TypeComponent,
						Children: []figma.Node{
							icon("1:2", "Inner", 24, 24),
						},
					},
				},
			},
			wantIDs: []string{"1:1"},
		},
		{
			name: "other node types are ignored with their subtree",
			root: &figma.Node{
				ID:   "0:0",
				Type: figma.TypeDocument,
				Children: []figma.Node{
					{
						ID:   "5:0",
						Type: "INSTANCE",
						Children: []figma.Node{
							icon("5:1", "Hidden", 24, 24),
						},
					},
					{ID: "5:2", Type: "TEXT"},
					icon("5:3", "Visible", 24, 24),
				},
			},
			wantIDs: []string{"5:3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Components(tt.root)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Components() returned %d nodes, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Components()[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name      string
		component figma.Node
		want      float64
		wantErr   string
	}{
		{name: "square", component: icon("1:1", "Add", 24, 24), want: 24},
		{name: "fractional square", component: icon("1:1", "Add", 20.5, 20.5), want: 20.5},
		{name: "not square", component: icon("1:1", "Wide", 32, 24), wantErr: "width (32) and height (24) do not match"},
		{name: "no bounding box", component: figma.Node{ID: "1:1", Type: figma.TypeComponent}, wantErr: ErrNoBoundingBox.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Size(tt.component)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Size() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Size() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Size(figma.Node{}); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("Size() error = %v, want ErrNoBoundingBox", err)
	}
}

func TestFormatSize(t *testing.T) {
	tests := map[float64]string{
		24:   "24",
		16:   "16",
		20.5: "20.5",
	}

	for in, want := range tests {
		if got := FormatSize(in); got != want {
			t.Errorf("FormatSize(%v) = %q, want %q", in, got, want)
		}
	}
}
