package tools

import (
	"context"
	"strings"

	"hotel-telegram-bot/internal/usecase/queries"
)

const (
	NameGetAttractions = "get_attractions"
	NameListRoomTypes  = "list_room_types"
)

var attractionCatalog = map[string][]string{
	"downtown": {"City Museum", "Grand Park", "Central Library"},
	"beach":    {"Sunny Beach Pier", "Boardwalk", "Marine Life Aquarium"},
}

const noAttractions = "No specific attractions found for that area."

type AttractionsTool struct{}

func NewAttractionsTool() *AttractionsTool {
	return &AttractionsTool{}
}

func (t *AttractionsTool) Name() string { return NameGetAttractions }

func (t *AttractionsTool) Description() string {
	return "Provides a list of nearby attractions."
}

func (t *AttractionsTool) Parameters() []Parameter {
	return []Parameter{
		{Name: "location", Type: "string", Description: "Area near the hotel.", Required: true, Enum: AttractionAreas()},
	}
}

func (t *AttractionsTool) Invoke(_ context.Context, inv Invocation) (Result, error) {
	var args struct {
		Location string `mapstructure:"location"`
	}
	if msg, ok := decodeArgs(inv.Args, &args); !ok {
		return errorResult(msg), nil
	}

	found, ok := attractionCatalog[strings.ToLower(strings.TrimSpace(args.Location))]
	if !ok {
		found = []string{noAttractions}
	}
	return Result{"attractions": append([]string(nil), found...)}, nil
}

// AttractionAreas lists the areas the catalog knows about, sorted.
func AttractionAreas() []string {
	return []string{"beach", "downtown"}
}

type RoomTypesTool struct {
	rooms queries.RoomQueries
}

func NewRoomTypesTool(rooms queries.RoomQueries) *RoomTypesTool {
	return &RoomTypesTool{rooms: rooms}
}

func (t *RoomTypesTool) Name() string { return NameListRoomTypes }

func (t *RoomTypesTool) Description() string {
	return "Lists the hotel's room types with their nightly price and how many rooms are free."
}

func (t *RoomTypesTool) Parameters() []Parameter { return nil }

func (t *RoomTypesTool) Invoke(ctx context.Context, _ Invocation) (Result, error) {
	offers, err := t.rooms.ListRoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]map[string]any, 0, len(offers))
	for _, o := range offers {
		types = append(types, map[string]any{
			"room_type": o.RoomType,
			"price":     moneyFloat(o.PricePerNightCents),
			"available": o.AvailableRooms,
		})
	}
	return Result{"status": StatusSuccess, "room_types": types}, nil
}
