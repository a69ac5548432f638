// file: cmd/deploywatch/main.go
// deploywatch: menunggu deployment Railway terbaru sampai settle
// (SUCCESS / FAILED / CRASHED). Tanpa token Railway, fallback polling
// /health aplikasi sampai sehat.
//
//	RAILWAY_TOKEN=... RAILWAY_SERVICE_ID=... go run ./cmd/deploywatch
//	go run ./cmd/deploywatch -health-url https://app.example.com/health
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

const railwayAPI = "https://backboard.railway.app/graphql/v2"

// status deployment Railway yang dianggap final
var settledStatuses = map[string]bool{
	"SUCCESS": true,
	"FAILED":  true,
	"CRASHED": true,
	"REMOVED": true,
}

type deploymentInfo struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func main() {
	healthURL := flag.String("health-url", "", "URL /health untuk fallback polling")
	interval := flag.Duration("interval", 10*time.Second, "jeda antar poll")
	timeout := flag.Duration("timeout", 10*time.Minute, "batas waktu menunggu")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	token := strings.TrimSpace(os.Getenv("RAILWAY_TOKEN"))
	serviceID := strings.TrimSpace(os.Getenv("RAILWAY_SERVICE_ID"))

	deadline := time.Now().Add(*timeout)

	if token != "" && serviceID != "" {
		watchRailway(token, serviceID, *interval, deadline)
		return
	}
	if *healthURL == "" {
		log.Fatal("butuh RAILWAY_TOKEN + RAILWAY_SERVICE_ID, atau -health-url")
	}
	watchHealth(*healthURL, *interval, deadline)
}

func watchRailway(token, serviceID string, interval time.Duration, deadline time.Time) {
	for time.Now().Before(deadline) {
		dep, err := latestDeployment(token, serviceID)
		if err != nil {
			log.WithError(err).Warn("poll Railway gagal")
		} else {
			log.WithFields(logrus.Fields{
				"deployment": dep.ID,
				"status":     dep.Status,
			}).Info("status deployment")
			if settledStatuses[dep.Status] {
				if dep.Status != "SUCCESS" {
					log.Errorf("deployment berakhir %s", dep.Status)
					os.Exit(1)
				}
				log.Info("✅ deployment SUCCESS")
				return
			}
		}
		time.Sleep(interval)
	}
	log.Error("timeout menunggu deployment settle")
	os.Exit(1)
}

// latestDeployment menanyakan deployment terbaru satu service via GraphQL.
func latestDeployment(token, serviceID string) (*deploymentInfo, error) {
	query := map[string]any{
		"query": `query($serviceId: String!) {
			deployments(input: {serviceId: $serviceId}, first: 1) {
				edges { node { id status createdAt } }
			}
		}`,
		"variables": map[string]any{"serviceId": serviceID},
	}
	body, _ := json.Marshal(query)

	req, err := http.NewRequest(http.MethodPost, railwayAPI, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("railway API status %d", resp.StatusCode)
	}

	var out struct {
		Data struct {
			Deployments struct {
				Edges []struct {
					Node deploymentInfo `json:"node"`
				} `json:"edges"`
			} `json:"deployments"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Data.Deployments.Edges) == 0 {
		return nil, fmt.Errorf("tidak ada deployment untuk service %s", serviceID)
	}
	return &out.Data.Deployments.Edges[0].Node, nil
}

func watchHealth(url string, interval time.Duration, deadline time.Time) {
	client := &http.Client{Timeout: 10 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err != nil {
			log.WithError(err).Warn("health check gagal")
		} else {
			resp.Body.Close()
			log.WithField("status", resp.StatusCode).Info("health check")
			if resp.StatusCode == http.StatusOK {
				log.Info("✅ aplikasi sehat")
				return
			}
		}
		time.Sleep(interval)
	}
	log.Error("timeout menunggu aplikasi sehat")
	os.Exit(1)
}
