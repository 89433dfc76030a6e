package generator

import (
	"fitgen/workout-service/internal/domain"
)

// relatedBodyParts is consulted by cascade level 4. Every list starts with
// the body part itself.
var relatedBodyParts = map[string][]string{
	domain.BodyPartChest:      {domain.BodyPartChest, domain.BodyPartShoulders, domain.BodyPartTriceps},
	domain.BodyPartBack:       {domain.BodyPartBack, domain.BodyPartLats, domain.BodyPartBiceps},
	domain.BodyPartShoulders:  {domain.BodyPartShoulders, domain.BodyPartChest, domain.BodyPartTriceps},
	domain.BodyPartLegs:       {domain.BodyPartLegs, "Quads", domain.BodyPartQuadriceps, domain.BodyPartHamstrings, domain.BodyPartGlutes},
	domain.BodyPartArms:       {domain.BodyPartArms, domain.BodyPartBiceps, domain.BodyPartTriceps, domain.BodyPartForearms},
	domain.BodyPartCore:       {domain.BodyPartCore, "Abs", domain.BodyPartAbdominals, domain.BodyPartObliques},
	domain.BodyPartBiceps:     {domain.BodyPartBiceps, domain.BodyPartArms, domain.BodyPartBack},
	domain.BodyPartTriceps:    {domain.BodyPartTriceps, domain.BodyPartArms, domain.BodyPartChest, domain.BodyPartShoulders},
	domain.BodyPartQuadriceps: {domain.BodyPartQuadriceps, domain.BodyPartLegs},
	domain.BodyPartHamstrings: {domain.BodyPartHamstrings, domain.BodyPartLegs, domain.BodyPartGlutes},
	domain.BodyPartGlutes:     {domain.BodyPartGlutes, domain.BodyPartLegs, domain.BodyPartHamstrings},
	domain.BodyPartCalves:     {domain.BodyPartCalves, domain.BodyPartLegs},
	domain.BodyPartAbdominals: {domain.BodyPartAbdominals, domain.BodyPartCore, domain.BodyPartObliques},
	domain.BodyPartObliques:   {domain.BodyPartObliques, domain.BodyPartCore, domain.BodyPartAbdominals},
	domain.BodyPartLowerBack:  {domain.BodyPartLowerBack, domain.BodyPartBack, domain.BodyPartCore},
	domain.BodyPartMiddleBack: {domain.BodyPartMiddleBack, domain.BodyPartBack, domain.BodyPartLats},
	domain.BodyPartTraps:      {domain.BodyPartTraps, domain.BodyPartBack, domain.BodyPartShoulders},
	domain.BodyPartLats:       {domain.BodyPartLats, domain.BodyPartBack},
}

// RelatedBodyParts returns the body parts that may stand in for bodyPart.
// Unmapped body parts map to themselves.
func RelatedBodyParts(bodyPart string) []string {
	if related, ok := relatedBodyParts[bodyPart]; ok {
		out := make([]string, len(related))
		copy(out, related)
		return out
	}
	return []string{bodyPart}
}
