package ussd

import "fmt"

// Response is one USSD reply. Rendered, a continuing prompt starts with
// "CON " (the gateway will call back with another '*' segment appended)
// and a terminal message starts with "END ".
type Response struct {
	Text string
	End  bool
}

// Render produces the gateway wire form.
func (r Response) Render() string {
	if r.End {
		return "END " + r.Text
	}
	return "CON " + r.Text
}

func con(format string, args ...any) Response {
	return Response{Text: fmt.Sprintf(format, args...)}
}

func end(format string, args ...any) Response {
	return Response{Text: fmt.Sprintf(format, args...), End: true}
}
