// file: cmd/smoketest/main.go
// smoketest: login sebagai tiap role lalu pukul matrix endpoint dan
// bandingkan status code dengan ekspektasi.
//
// Kredensial via env: SMOKE_<ROLE>_EMAIL / SMOKE_<ROLE>_PASSWORD
// (ADMIN, TEACHER, PARENT, STUDENT). Role tanpa kredensial di-skip.
//
//	SMOKE_ADMIN_EMAIL=... SMOKE_ADMIN_PASSWORD=... \
//	go run ./cmd/smoketest -base http://localhost:3000 -institute <uuid>
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	base := flag.String("base", "http://localhost:3000", "base URL aplikasi")
	institute := flag.String("institute", "", "institute_id (UUID) untuk scope")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *institute == "" {
		log.Fatal("-institute wajib diisi")
	}

	client := &http.Client{Timeout: 15 * time.Second}
	tokens := map[string]string{}
	for _, role := range []string{"admin", "teacher", "parent", "student"} {
		email := os.Getenv("SMOKE_" + strings.ToUpper(role) + "_EMAIL")
		password := os.Getenv("SMOKE_" + strings.ToUpper(role) + "_PASSWORD")
		if email == "" || password == "" {
			continue
		}
		token, err := login(client, *base, email, password)
		if err != nil {
			log.WithError(err).Errorf("login %s gagal", role)
			continue
		}
		tokens[role] = token
		log.Infof("login %s OK", role)
	}
	if len(tokens) == 0 {
		log.Fatal("tidak ada kredensial yang bisa dipakai")
	}

	var results []CheckResult
	for _, check := range DefaultMatrix() {
		token, ok := tokens[check.Role]
		if !ok {
			results = append(results, CheckResult{Check: check, SkipReason: "tanpa kredensial"})
			continue
		}
		path := strings.ReplaceAll(check.Path, "{iid}", *institute)
		req, err := http.NewRequest(check.Method, *base+path, nil)
		if err != nil {
			results = append(results, CheckResult{Check: check, Err: err})
			continue
		}
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := client.Do(req)
		if err != nil {
			results = append(results, CheckResult{Check: check, Err: err})
			continue
		}
		resp.Body.Close()
		results = append(results, CheckResult{Check: check, GotStatus: resp.StatusCode})
	}

	summary := Evaluate(results)
	for _, line := range summary.Reports {
		if strings.HasPrefix(line, "FAIL") {
			log.Error(line)
		} else {
			log.Info(line)
		}
	}
	log.Infof("passed=%d failed=%d skipped=%d", summary.Passed, summary.Failed, summary.Skipped)
	if !summary.OK() {
		os.Exit(1)
	}
}

// login memanggil /api/auth/login dan mengambil access_token dari envelope.
func login(client *http.Client, base, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"identifier": email,
		"password":   password,
	})
	resp, err := client.Post(base+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login status %d", resp.StatusCode)
	}
	var out struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Data.AccessToken == "" {
		return "", fmt.Errorf("access_token kosong")
	}
	return out.Data.AccessToken, nil
}
