// ABOUTME: OAuth2 token loading for the Gmail client.
package gmail

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// TokenFromFile loads a token JSON written by an authorization flow and
// returns a source the client can use. The token must still be valid;
// refreshing is the authorization flow's job.
func TokenFromFile(path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	return oauth2.StaticTokenSource(&tok), nil
}
