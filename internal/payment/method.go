package payment

import "fmt"

// Method is one of the closed set of mobile-money channels the academy
// accepts. The catalog is static and not user-editable; users select a
// method, they never create one.
type Method struct {
	ID     string
	Name   string
	Number string // receiving number the user transfers to
	Owner  string // receiving-account owner, shown for confidence
	dial   string // USSD template, parameterized by amount
}

var catalog = []Method{
	{
		ID:     "orange",
		Name:   "Orange Money",
		Number: "658508638",
		Owner:  "Patrick Ngono",
		dial:   "#150*1*1*%s*%d#",
	},
	{
		ID:     "mtn",
		Name:   "MTN Mobile Money",
		Number: "654046210",
		Owner:  "Fabrice Seke",
		dial:   "*126*1*1*%s*%d#",
	},
}

// Methods returns a copy of the catalog.
func Methods() []Method {
	out := make([]Method, len(catalog))
	copy(out, catalog)
	return out
}

// MethodByID looks a method up in the catalog.
func MethodByID(id string) (Method, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}

// Instructions renders the step-by-step transfer guide for this method at
// the given amount. The receiving number shown always belongs to the
// selected method.
func (m Method) Instructions(amountXAF int64) []string {
	return []string{
		fmt.Sprintf("Dial %s", fmt.Sprintf(m.dial, m.Number, amountXAF)),
		"Choose \"Send money\"",
		fmt.Sprintf("Enter the number: %s", m.Number),
		fmt.Sprintf("Enter the amount: %d FCFA", amountXAF),
		"Confirm with your secret code",
		"Note the transaction id received by SMS",
	}
}
