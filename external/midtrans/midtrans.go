package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Gateway wraps the snap client behind the shape the checkout needs:
// amount + external ref + return URL in, hosted redirect URL out.
type Gateway struct {
	Snap *snap.Client
}

func NewGateway() *Gateway {
	var client snap.Client

	client.New(
		os.Getenv("MIDTRANS_SERVER_KEY"),
		midtrans.Sandbox,
	)

	return &Gateway{Snap: &client}
}

// CreateRedirectSession requests a hosted payment page for the given
// amount (VND). The caller redirects the browser to the returned URL
// after the order record exists.
func (g *Gateway) CreateRedirectSession(amount int64, externalRef, returnURL string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  externalRef,
			GrossAmt: amount,
		},
		Callbacks: &snap.Callbacks{Finish: returnURL},
	}

	resp, snapErr := g.Snap.CreateTransaction(req)
	if snapErr != nil {
		return "", snapErr
	}

	return resp.RedirectURL, nil
}

func VerifySignature(
	orderID string,
	statusCode string,
	grossAmount string,
	signature string,
	serverKey string,
) bool {

	raw := orderID + statusCode + grossAmount + serverKey
	hash := sha512.Sum512([]byte(raw))
	expected := hex.EncodeToString(hash[:])

	return expected == signature
}
