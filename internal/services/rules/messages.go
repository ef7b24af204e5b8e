package rules

import (
	"fmt"
	"strings"

	"github.com/mcoot/iotagame/internal/model"
)

const (
	msgPositionOccupied  = "Position is already occupied"
	msgNotAdjacent       = "Card must be placed adjacent to existing cards"
	msgTurnAxisViolation = "All cards in a turn must be placed in the same row or column"
)

func axisTitle(axis model.Axis) string {
	name := axis.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func plural(attr model.Attribute) string {
	return attr.String() + "s"
}

func fixedValueMessage(axis model.Axis, attr model.Attribute, want, got string) string {
	return fmt.Sprintf("%s line requires all %s to be %s, but you're trying to place %s",
		axisTitle(axis), plural(attr), want, got)
}

func duplicateMessage(axis model.Axis, attr model.Attribute, value string) string {
	return fmt.Sprintf("%s line requires all different %s, but %s is already in the line",
		axisTitle(axis), plural(attr), value)
}

func exhaustedMessage(axis model.Axis, attr model.Attribute) string {
	return fmt.Sprintf("%s line requires all different %s, but every %s is already in the line",
		axisTitle(axis), plural(attr), attr)
}

func mixedMessage(axis model.Axis, attr model.Attribute) string {
	return fmt.Sprintf("%s line has mixed %s - must be either all the same or all different",
		axisTitle(axis), plural(attr))
}

func lineTooLongMessage(axis model.Axis, limit int) string {
	return fmt.Sprintf("%s line would exceed the maximum length of %d", axisTitle(axis), limit)
}
