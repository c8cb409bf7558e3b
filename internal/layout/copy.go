package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SportCountPlaceholder in hero text is replaced with the number of
// distinct sports and categories in the email.
const SportCountPlaceholder = "{sport_count}"

// Phrases is a pair of variant lists: one for sports-only emails and one for
// emails that also carry arts events.
type Phrases struct {
	Sports []string `yaml:"sports" json:"sports"`
	Arts   []string `yaml:"arts" json:"arts"`
}

func (p Phrases) pick(week int, hasArts bool) string {
	if hasArts && len(p.Arts) > 0 {
		return rotate(p.Arts, week)
	}
	return rotate(p.Sports, week)
}

// Variants is the full set of pre-authored copy. Each list rotates on its
// own length, all keyed by the same ISO week number.
type Variants struct {
	Titles     []string `yaml:"titles" json:"titles"`
	Hero       Phrases  `yaml:"hero" json:"hero"`
	Intro      Phrases  `yaml:"intro" json:"intro"`
	CTA        Phrases  `yaml:"cta" json:"cta"`
	CTAButtons []string `yaml:"cta_buttons" json:"cta_buttons"`
	CTAHeaders []string `yaml:"cta_headers" json:"cta_headers"`
}

// Validate checks that every list Select draws from has at least one entry
func (v Variants) Validate() error {
	var errs []error
	check := func(name string, list []string) {
		if len(list) == 0 {
			errs = append(errs, fmt.Errorf("copy list %q is empty", name))
		}
	}
	check("titles", v.Titles)
	check("hero.sports", v.Hero.Sports)
	check("intro.sports", v.Intro.Sports)
	check("cta.sports", v.CTA.Sports)
	check("cta_buttons", v.CTAButtons)
	check("cta_headers", v.CTAHeaders)
	return errors.Join(errs...)
}

// Copy is the phrasing chosen for one email
type Copy struct {
	Title     string `json:"title"`
	Hero      string `json:"hero"`
	Intro     string `json:"intro"`
	CTA       string `json:"cta"`
	CTAButton string `json:"cta_button"`
	CTAHeader string `json:"cta_header"`
}

// Index maps an ISO week number onto a list of length n
func Index(week, n int) int {
	if n <= 0 {
		return 0
	}
	i := week % n
	if i < 0 {
		i += n
	}
	return i
}

func rotate(list []string, week int) string {
	if len(list) == 0 {
		return ""
	}
	return list[Index(week, len(list))]
}

// Select picks the copy for an ISO week. The same week always yields the
// same copy; hasArts switches hero, intro, and CTA to their arts variants.
func (v Variants) Select(week int, hasArts bool) Copy {
	return Copy{
		Title:     rotate(v.Titles, week),
		Hero:      v.Hero.pick(week, hasArts),
		Intro:     v.Intro.pick(week, hasArts),
		CTA:       v.CTA.pick(week, hasArts),
		CTAButton: rotate(v.CTAButtons, week),
		CTAHeader: rotate(v.CTAHeaders, week),
	}
}

// WithSportCount fills the sport-count placeholder in the hero text
func (c Copy) WithSportCount(n int) Copy {
	c.Hero = strings.ReplaceAll(c.Hero, SportCountPlaceholder, strconv.Itoa(n))
	return c
}
