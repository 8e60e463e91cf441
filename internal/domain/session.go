package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// MsgSessionFieldsRequired is the fixed message returned when a session
// cannot be recorded because a field is missing.
const MsgSessionFieldsRequired = "employe_id et nb_colis sont requis"

// FlexInt is an integer that decodes from a JSON number or a numeric string
// such as "12", the form HTML inputs submit. null and "" decode to 0.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("flexint: %w", err)
		}
		b = bytes.TrimSpace([]byte(s))
		if len(b) == 0 {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("flexint: %w", err)
	}
	*n = FlexInt(v)
	return nil
}

// CreateSessionRequest is the body of POST /sessions.
// Zero values count as missing: an employee id or package count of 0 is rejected.
type CreateSessionRequest struct {
	EmployeID FlexInt `json:"employe_id" validate:"required"`
	NbColis   FlexInt `json:"nb_colis" validate:"required"`
}
