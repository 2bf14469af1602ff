package domain

// OrderLocation is the derived "where is this order" view: the section of
// the first not-yet-done operation, or a terminal marker when the route is
// finished, or an unplanned marker when the order has no route at all.
type OrderLocation struct {
	Kind        LocationKind
	SectionID   string
	SectionName string
}

func NewSectionLocation(sectionID, sectionName string) OrderLocation {
	return OrderLocation{Kind: LocationSection, SectionID: sectionID, SectionName: sectionName}
}

func NewCompleteLocation() OrderLocation {
	return OrderLocation{Kind: LocationComplete}
}

func NewUnplannedLocation() OrderLocation {
	return OrderLocation{Kind: LocationUnplanned}
}
