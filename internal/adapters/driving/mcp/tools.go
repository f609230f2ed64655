package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

// ListCanteensInput is the input schema for the list_canteens tool.
type ListCanteensInput struct {
	Source string `json:"source,omitempty" jsonschema:"only list canteens publishing in this format (e.g. studentenwerk)"`
}

// ListCanteensOutput is the output schema for the list_canteens tool.
type ListCanteensOutput struct {
	Canteens []CanteenOutput `json:"canteens"`
	Count    int             `json:"count"`
}

// CanteenOutput represents a single canteen.
type CanteenOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	Published bool   `json:"published"`
}

// GetMenuInput is the input schema for the get_menu tool.
type GetMenuInput struct {
	Location string `json:"location" jsonschema:"the canteen id, see list_canteens"`
	Date     string `json:"date,omitempty" jsonschema:"the day as YYYY-MM-DD (default today)"`
}

// GetMenuOutput is the output schema for the get_menu tool.
type GetMenuOutput struct {
	Location string       `json:"location"`
	Date     string       `json:"date"`
	Dishes   []DishOutput `json:"dishes"`
	Count    int          `json:"count"`
}

// DishOutput represents a single dish. Prices are keyed by audience and
// formatted with two decimals.
type DishOutput struct {
	Name   string            `json:"name"`
	Prices map[string]string `json:"prices,omitempty"`
	Labels []string          `json:"labels,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_canteens",
		Description: "List the known canteens and whether menus are published for them",
	}, s.handleListCanteens)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_menu",
		Description: "Get the dishes a canteen serves on a day",
	}, s.handleGetMenu)
}

// handleListCanteens handles the list_canteens tool invocation.
func (s *Server) handleListCanteens(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListCanteensInput,
) (*mcp.CallToolResult, ListCanteensOutput, error) {
	published := make(map[string]bool)
	locations, err := s.ports.Menu.Locations(ctx)
	if err != nil {
		return nil, ListCanteensOutput{}, fmt.Errorf("listing published menus: %w", err)
	}
	for _, l := range locations {
		published[l] = true
	}

	output := ListCanteensOutput{Canteens: []CanteenOutput{}}
	for _, c := range domain.Canteens() {
		if input.Source != "" && c.Source != input.Source {
			continue
		}
		output.Canteens = append(output.Canteens, CanteenOutput{
			ID:        c.ID,
			Name:      c.Name,
			Source:    c.Source,
			Published: published[c.ID],
		})
	}
	output.Count = len(output.Canteens)

	return nil, output, nil
}

// handleGetMenu handles the get_menu tool invocation.
func (s *Server) handleGetMenu(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetMenuInput,
) (*mcp.CallToolResult, GetMenuOutput, error) {
	if input.Location == "" {
		return nil, GetMenuOutput{}, fmt.Errorf("location is required: %w", domain.ErrInvalidInput)
	}

	date := domain.CivilDate(s.now())
	if input.Date != "" {
		d, err := time.Parse(domain.DateLayout, input.Date)
		if err != nil {
			return nil, GetMenuOutput{}, fmt.Errorf("date %q: %w", input.Date, domain.ErrInvalidDate)
		}
		date = d
	}

	log := logger.Slog().With("tool", "get_menu", "location", input.Location, "date", date.Format(domain.DateLayout))
	day, err := s.ports.Menu.Menu(ctx, input.Location, date)
	if err != nil {
		log.Debug("lookup failed", "err", err)
		return nil, GetMenuOutput{}, err
	}

	dishes := day.Dishes()
	log.Debug("served", "dishes", len(dishes))
	output := GetMenuOutput{
		Location: input.Location,
		Date:     date.Format(domain.DateLayout),
		Dishes:   make([]DishOutput, len(dishes)),
		Count:    len(dishes),
	}
	for i := range dishes {
		output.Dishes[i] = dishOutput(dishes[i])
	}

	return nil, output, nil
}

func dishOutput(d domain.Dish) DishOutput {
	out := DishOutput{Name: d.Name, Labels: d.Labels}
	if len(d.Prices) > 0 {
		out.Prices = make(map[string]string, len(d.Prices))
		for a, amount := range d.Prices {
			out.Prices[string(a)] = amount.StringFixed(2)
		}
	}
	return out
}
