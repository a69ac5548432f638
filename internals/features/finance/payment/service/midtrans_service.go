// file: internals/features/finance/payment/service/midtrans_service.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"institutku_backend/internals/configs"
)

var (
	snapClient snap.Client
	serverKey  string
)

// InitMidtrans menyiapkan Snap client. Dipanggil sekali dari main.
// Key kosong membuat pembuatan token gagal, bukan panic, supaya mode
// manual-only tetap jalan.
func InitMidtrans(key string) {
	serverKey = strings.TrimSpace(key)
	env := midtrans.Sandbox
	if strings.EqualFold(configs.GetEnvOr("MIDTRANS_ENV", "sandbox"), "production") {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	if serverKey == "" {
		log.Println("[PAYMENT] ⚠️ MIDTRANS_SERVER_KEY kosong, checkout online nonaktif")
		return
	}
	log.Println("[PAYMENT] 🔌 Midtrans Snap client siap")
}

// NewOrderID membentuk order_id unik dan tetap terbaca di dashboard Midtrans.
func NewOrderID(instituteID uuid.UUID) string {
	short := strings.ReplaceAll(instituteID.String(), "-", "")[:8]
	return fmt.Sprintf("INV-%s-%d", strings.ToUpper(short), time.Now().UnixNano()/int64(time.Millisecond))
}

// GenerateSnapToken membuat transaksi Snap untuk satu payment.
func GenerateSnapToken(orderID string, amountIDR int64, customerName, customerEmail string) (token, redirectURL string, err error) {
	if serverKey == "" {
		return "", "", fmt.Errorf("midtrans belum dikonfigurasi")
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amountIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}
	resp, snapErr := snapClient.CreateTransaction(req)
	if snapErr != nil {
		return "", "", snapErr
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifySignature memvalidasi signature_key notifikasi Midtrans:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	if serverKey == "" || signature == "" {
		return false
	}
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == strings.ToLower(strings.TrimSpace(signature))
}
