package room

type Room struct {
	id            int32
	roomType      Type
	pricePerNight Money
	availability  Availability
}

func ReconstructRoom(id int32, roomType Type, pricePerNight Money, availability Availability) *Room {
	return &Room{
		id:            id,
		roomType:      roomType,
		pricePerNight: pricePerNight,
		availability:  availability,
	}
}

func (r *Room) IsAvailable() bool {
	return r.availability == AvailabilityAvailable
}

func (r *Room) ID() int32                  { return r.id }
func (r *Room) Type() Type                 { return r.roomType }
func (r *Room) PricePerNight() Money       { return r.pricePerNight }
func (r *Room) Availability() Availability { return r.availability }
