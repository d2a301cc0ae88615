package fieldutils

import (
	"regexp"

	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Za-z0-9]{10,30}$`)

// LooksLikeIBAN reports whether an identifier has the IBAN shape. Exporters
// use it to pick the IBAN tag over the other-identification tag for bare
// account-id strings whose scheme the domain model does not record.
func LooksLikeIBAN(id string) bool {
	return ibanPattern.MatchString(id)
}

// ParseCriteriaGroups maps the search-criteria groups shared by the camt.003
// and camt.005 queries. Each sub-criterion may occur at most once per group;
// a repeated occurrence is a structural error, not a silent first-wins.
func ParseCriteriaGroups(groups []isodoc.SchCrit, messageType, path string) ([]models.SearchCriteria, error) {
	out := make([]models.SearchCriteria, 0, len(groups))
	for _, group := range groups {
		if len(group.AcctID) > 1 {
			return nil, parsererror.NewInvalidStructure(messageType, path+".AcctId", "account-id criterion occurs more than once")
		}
		if len(group.Ccy) > 1 {
			return nil, parsererror.NewInvalidStructure(messageType, path+".Ccy", "currency criterion occurs more than once")
		}
		if len(group.Bal) > 1 {
			return nil, parsererror.NewInvalidStructure(messageType, path+".Bal", "balance criterion occurs more than once")
		}

		var criteria models.SearchCriteria
		if len(group.AcctID) == 1 {
			match, err := parseAccountMatch(group.AcctID[0], messageType, path)
			if err != nil {
				return nil, err
			}
			criteria.Account = match
		}
		if len(group.Ccy) == 1 {
			criteria.Currency = group.Ccy[0]
		}
		if len(group.Bal) == 1 && group.Bal[0].ValDt != nil {
			date, err := dateutils.ParseDateOrDateTime(group.Bal[0].ValDt.Dt, group.Bal[0].ValDt.DtTm)
			if err != nil {
				return nil, &parsererror.ParseError{MessageType: messageType, Path: path + ".Bal.ValDt", Value: group.Bal[0].ValDt.Dt, Err: err}
			}
			criteria.BalanceDate = &date
		}
		out = append(out, criteria)
	}
	return out, nil
}

func parseAccountMatch(choice isodoc.AcctIDChoice, messageType, path string) (*models.AccountMatch, error) {
	var kind models.MatchKind
	var text string
	switch {
	case choice.EQ != nil:
		kind = models.MatchEqual
		text = choice.EQ.IBAN
		if text == "" && choice.EQ.Othr != nil {
			text = choice.EQ.Othr.ID
		}
	case choice.CTTxt != "":
		kind = models.MatchContains
		text = choice.CTTxt
	case choice.NCTTxt != "":
		kind = models.MatchNotContains
		text = choice.NCTTxt
	default:
		return nil, parsererror.NewInvalidStructure(messageType, path+".AcctId", "empty account-id criterion")
	}
	match, err := models.NewAccountMatch(kind, text)
	if err != nil {
		return nil, parsererror.NewInvalidStructure(messageType, path+".AcctId", err.Error())
	}
	return &match, nil
}

// ExportCriteriaGroups is the inverse of ParseCriteriaGroups. Exact matches
// are written back as an IBAN when the text has the IBAN shape, otherwise as
// an other-identification.
func ExportCriteriaGroups(criteria []models.SearchCriteria) []isodoc.SchCrit {
	if len(criteria) == 0 {
		return nil
	}
	out := make([]isodoc.SchCrit, 0, len(criteria))
	for _, c := range criteria {
		var group isodoc.SchCrit
		if c.Account != nil {
			group.AcctID = []isodoc.AcctIDChoice{exportAccountMatch(*c.Account)}
		}
		if c.Currency != "" {
			group.Ccy = []string{c.Currency}
		}
		if c.BalanceDate != nil {
			group.Bal = []isodoc.BalCrit{{ValDt: &isodoc.DateChoice{Dt: dateutils.FormatDate(*c.BalanceDate)}}}
		}
		out = append(out, group)
	}
	return out
}

func exportAccountMatch(match models.AccountMatch) isodoc.AcctIDChoice {
	switch match.Kind {
	case models.MatchContains:
		return isodoc.AcctIDChoice{CTTxt: match.Text}
	case models.MatchNotContains:
		return isodoc.AcctIDChoice{NCTTxt: match.Text}
	}
	if ibanPattern.MatchString(match.Text) {
		return isodoc.AcctIDChoice{EQ: &isodoc.AccountID{IBAN: match.Text}}
	}
	return isodoc.AcctIDChoice{EQ: &isodoc.AccountID{Othr: &isodoc.OtherID{ID: match.Text}}}
}
