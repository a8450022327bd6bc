package catalog

// Injury is one entry of the fixed catalog. Descriptions are written from the
// athlete's perspective rather than in medical terminology, and the Movable
// flag records whether the affected area can still be moved at all.
type Injury struct {
	Type        string
	BodyPart    BodyPart
	Movable     bool
	Description string
}

// commonInjuries is the full catalog. It is never edited at runtime; patients
// only select entries by reference.
var commonInjuries = []Injury{
	{"Quadriceps Contusion", Thigh, true, "Deep bruise from direct impact. Can walk but with pain."},
	{"Hamstring Strain Grade 2", Hamstring, true, "Partial muscle tear. Pain when bending knee or stretching."},
	{"Achilles Tendinitis", Achilles, true, "Morning stiffness and pain along the back of heel."},
	{"Calf Muscle Pull", Calf, true, "Sudden sharp pain during push-off. Can't run properly."},
	{"High Ankle Sprain", Ankle, false, "Pain above ankle, between tibia and fibula. Very unstable."},
	{"Ankle Fracture", Ankle, false, "Broken bone in ankle. Can't bear any weight at all."},
	{"ACL Tear", Knee, false, "Knee gave out with popping sound. Immediate swelling."},
	{"Meniscus Tear", Knee, true, "Locking/catching sensation. Pain when twisting knee."},
	{"Plantar Fasciitis", Foot, true, "Heel pain especially first steps in morning."},
	{"Metatarsal Stress Fracture", Foot, false, "Pain in middle of foot. Worse with activity."},
	{"Compartment Syndrome", Shin, false, "Intense pressure and pain. Numbness in foot."},
	{"Tibial Stress Reaction", Shin, true, "Pain along shin bone that worsens with exercise."},
	{"Tennis Elbow", Elbow, true, "Pain on outside of elbow when gripping or lifting."},
	{"Golfer's Elbow", Elbow, true, "Pain on inside of elbow, worse with wrist flexion."},
	{"Rotator Cuff Tear", Shoulder, true, "Pain when lifting arm overhead. Weakness."},
	{"Frozen Shoulder", Shoulder, false, "Stiffness and pain. Gradually losing range of motion."},
	{"Wrist Sprain", Wrist, true, "Pain with movement, especially bending backward."},
	{"Carpal Tunnel Syndrome", Wrist, true, "Numbness/tingling in fingers, especially at night."},
	{"Femur Fracture", Leg, false, "Severe thigh pain. Leg appears deformed."},
	{"IT Band Syndrome", Leg, true, "Pain on outside of knee/hip. Worse with running."},
	{"Biceps Tendinitis", Arm, true, "Pain in front of shoulder when lifting."},
	{"Triceps Strain", Arm, true, "Pain in back of upper arm when extending elbow."},
	{"AC Joint Separation", Shoulder, false, "Bump on top of shoulder. Pain with arm movement."},
	{"Patellar Tendinitis", Knee, true, "Pain below kneecap, especially when jumping."},
	{"Achilles Rupture", Achilles, false, "Sudden pop in calf. Can't push off foot."},
	{"Anterior Ankle Impingement", Ankle, true, "Pain in front of ankle when pointing toes up."},
}

// All returns the catalog in its fixed order. Callers get a fresh slice so
// the catalog itself cannot be mutated.
func All() []Injury {
	out := make([]Injury, len(commonInjuries))
	copy(out, commonInjuries)
	return out
}

// ByBodyPart filters the catalog to one body part, preserving catalog order.
// A nil filter returns the full catalog, which is how "All" selections in the
// shell are expressed.
func ByBodyPart(part *BodyPart) []Injury {
	if part == nil {
		return All()
	}
	var out []Injury
	for _, inj := range commonInjuries {
		if inj.BodyPart == *part {
			out = append(out, inj)
		}
	}
	return out
}

// ByType resolves a catalog entry by its exact type name.
func ByType(name string) (Injury, bool) {
	for _, inj := range commonInjuries {
		if inj.Type == name {
			return inj, true
		}
	}
	return Injury{}, false
}
