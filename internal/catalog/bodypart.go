package catalog

import (
	"fmt"
	"strings"
)

// BodyPart categorizes where an injury sits. The set is closed; injuries are
// only ever tagged with one of these values.
type BodyPart int

const (
	Thigh BodyPart = iota
	Hamstring
	Calf
	Ankle
	Knee
	Foot
	Shin
	Arm
	Leg
	Wrist
	Shoulder
	Elbow
	Achilles
)

var bodyPartNames = [...]string{
	Thigh:     "Thigh",
	Hamstring: "Hamstring",
	Calf:      "Calf",
	Ankle:     "Ankle",
	Knee:      "Knee",
	Foot:      "Foot",
	Shin:      "Shin",
	Arm:       "Arm",
	Leg:       "Leg",
	Wrist:     "Wrist",
	Shoulder:  "Shoulder",
	Elbow:     "Elbow",
	Achilles:  "Achilles",
}

func (b BodyPart) String() string {
	if b < 0 || int(b) >= len(bodyPartNames) {
		return fmt.Sprintf("BodyPart(%d)", int(b))
	}
	return bodyPartNames[b]
}

// BodyParts returns all valid body parts in declaration order.
func BodyParts() []BodyPart {
	parts := make([]BodyPart, len(bodyPartNames))
	for i := range parts {
		parts[i] = BodyPart(i)
	}
	return parts
}

// ParseBodyPart resolves a display name, case-insensitively.
func ParseBodyPart(s string) (BodyPart, error) {
	for i, name := range bodyPartNames {
		if strings.EqualFold(name, s) {
			return BodyPart(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body part %q", s)
}
