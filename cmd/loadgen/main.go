// file: cmd/loadgen/main.go
// loadgen: generator config Artillery + load loop HTTP sederhana
// untuk mengukur latensi endpoint panas.
//
//	go run ./cmd/loadgen -target http://localhost:3000 -rate 20 -duration 30 -out artillery.yml
//	go run ./cmd/loadgen -target http://localhost:3000 -rate 20 -duration 10 -run
package main

import (
	"flag"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	target := flag.String("target", "http://localhost:3000", "base URL aplikasi")
	rate := flag.Int("rate", 10, "request per detik")
	duration := flag.Int("duration", 30, "durasi fase (detik)")
	out := flag.String("out", "artillery.yml", "file output config Artillery")
	token := flag.String("token", "", "access token opsional (Authorization)")
	run := flag.Bool("run", false, "jalankan load loop bawaan, bukan hanya generate config")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	doc := BuildArtilleryDoc(*target, *rate, *duration, *token)
	data, err := MarshalArtilleryYAML(doc)
	if err != nil {
		log.Fatalf("gagal marshal config: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("gagal menulis %s: %v", *out, err)
	}
	log.WithFields(logrus.Fields{
		"out":      *out,
		"target":   *target,
		"rate":     *rate,
		"duration": *duration,
	}).Info("config Artillery ditulis")

	if !*run {
		return
	}
	runLoadLoop(*target, *rate, *duration, *token)
}

// runLoadLoop memukul endpoint panas dengan rate tetap dan mencetak
// ringkasan latensi.
func runLoadLoop(target string, rate, durationSec int, token string) {
	client := &http.Client{Timeout: 10 * time.Second}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()
	deadline := time.Now().Add(time.Duration(durationSec) * time.Second)

	type result struct {
		latency time.Duration
		status  int
		err     error
	}
	results := make(chan result, rate*durationSec)
	inflight := 0

	for time.Now().Before(deadline) {
		<-ticker.C
		ep := hotEndpoints[inflight%len(hotEndpoints)]
		inflight++
		go func(url string) {
			req, err := http.NewRequest(http.MethodGet, target+url, nil)
			if err != nil {
				results <- result{err: err}
				return
			}
			if token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			start := time.Now()
			resp, err := client.Do(req)
			if err != nil {
				results <- result{err: err}
				return
			}
			resp.Body.Close()
			results <- result{latency: time.Since(start), status: resp.StatusCode}
		}(ep)
	}

	var latencies []time.Duration
	okCount, failCount := 0, 0
	for i := 0; i < inflight; i++ {
		r := <-results
		if r.err != nil || r.status >= 500 {
			failCount++
			continue
		}
		okCount++
		latencies = append(latencies, r.latency)
	}

	if len(latencies) == 0 {
		log.Error("tidak ada response sukses")
		os.Exit(1)
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	pct := func(p float64) time.Duration {
		idx := int(float64(len(latencies)-1) * p)
		return latencies[idx]
	}
	log.WithFields(logrus.Fields{
		"requests": inflight,
		"ok":       okCount,
		"fail":     failCount,
		"p50":      pct(0.50).String(),
		"p95":      pct(0.95).String(),
		"p99":      pct(0.99).String(),
	}).Info("load loop selesai")
}
