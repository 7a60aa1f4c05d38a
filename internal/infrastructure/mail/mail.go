package mail

import "context"

// Sender dispatches one-time codes to users out-of-band. Delivery failure
// surfaces to the caller; there is no automatic retry, the user simply
// requests a new code.
type Sender interface {
	SendOTP(ctx context.Context, email, code string) error
}
