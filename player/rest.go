package player

import (
	"strconv"
	"time"
)

// RestModel is the JSON:API representation of a player. Attributes are
// pointers so partial update documents can leave fields absent.
type RestModel struct {
	Id             uint32      `json:"-"`
	Name           *string     `json:"name,omitempty"`
	Title          *string     `json:"title,omitempty"`
	Race           *Race       `json:"race,omitempty"`
	Profession     *Profession `json:"profession,omitempty"`
	Birthday       *int64      `json:"birthday,omitempty"`
	Banned         *bool       `json:"banned,omitempty"`
	Experience     *int64      `json:"experience,omitempty"`
	Level          *uint32     `json:"level,omitempty"`
	UntilNextLevel *uint32     `json:"untilNextLevel,omitempty"`
}

func (r RestModel) GetName() string {
	return "players"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(strId string) error {
	if strId == "" {
		return nil
	}
	id, err := strconv.ParseUint(strId, 10, 32)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func Transform(p Player) (RestModel, error) {
	name := p.Name()
	title := p.Title()
	race := p.Race()
	profession := p.Profession()
	birthday := p.Birthday().UnixMilli()
	banned := p.Banned()
	experience := int64(p.Experience())
	level := p.Level()
	untilNextLevel := p.UntilNextLevel()

	return RestModel{
		Id:             p.Id(),
		Name:           &name,
		Title:          &title,
		Race:           &race,
		Profession:     &profession,
		Birthday:       &birthday,
		Banned:         &banned,
		Experience:     &experience,
		Level:          &level,
		UntilNextLevel: &untilNextLevel,
	}, nil
}

func TransformAll(ps []Player) ([]RestModel, error) {
	results := make([]RestModel, 0, len(ps))
	for _, p := range ps {
		rm, err := Transform(p)
		if err != nil {
			return nil, err
		}
		results = append(results, rm)
	}
	return results, nil
}

// Extract converts an inbound document to an Input. Identifier and derived
// attributes supplied by the client are ignored.
func Extract(r RestModel) Input {
	in := Input{
		Name:       r.Name,
		Title:      r.Title,
		Race:       r.Race,
		Profession: r.Profession,
		Banned:     r.Banned,
		Experience: r.Experience,
	}
	if r.Birthday != nil {
		b := time.UnixMilli(*r.Birthday).UTC()
		in.Birthday = &b
	}
	return in
}
