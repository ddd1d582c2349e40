package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"
)

var companies = []string{"СДЭК", "Почта России", "Boxberry", "DPD", "ПЭК"}
var tariffTypes = []string{"Тип тарифа 1", "Тип тарифа 2", "Тип тарифа 3"}

type request struct {
	City     string  `json:"city"`
	Weight   float64 `json:"weight"`
	Strategy string  `json:"strategy"`
}

type tariff struct {
	Company         string  `json:"company"`
	CargoType       string  `json:"cargo_type"`
	TariffType      string  `json:"tariff_type"`
	Price           float64 `json:"price"`
	Days            int     `json:"days"`
	IsPriceRestored bool    `json:"is_price_restored"`
	IsTimeRestored  bool    `json:"is_time_restored"`
	SourceURL       string  `json:"source_url"`
}

type response struct {
	City     string   `json:"city"`
	WeightKg float64  `json:"weight_kg"`
	Strategy string   `json:"strategy"`
	AvgPrice float64  `json:"avg_price"`
	AvgDays  float64  `json:"avg_days"`
	Tariffs  []tariff `json:"tariffs"`
}

// Имитирует бэкенд тарифов: случайные задержки, ошибки и пустые ответы.
func main() {
	http.HandleFunc("POST /api/tariffs", func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		time.Sleep(time.Duration(rand.Intn(800)) * time.Millisecond)
		switch rand.Intn(20) {
		case 0:
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		case 1:
			w.Write([]byte("<html>oops</html>"))
			return
		}

		res := response{City: req.City, WeightKg: req.Weight, Strategy: req.Strategy}
		var sumPrice float64
		var sumDays int
		for range rand.Intn(8) {
			t := tariff{
				Company:         companies[rand.Intn(len(companies))],
				CargoType:       "Посылка",
				TariffType:      tariffTypes[rand.Intn(len(tariffTypes))],
				Price:           float64(200+rand.Intn(3000)) + float64(rand.Intn(100))/100,
				Days:            1 + rand.Intn(14),
				IsPriceRestored: rand.Intn(4) == 0,
				IsTimeRestored:  rand.Intn(4) == 0,
			}
			sumPrice += t.Price
			sumDays += t.Days
			res.Tariffs = append(res.Tariffs, t)
		}
		if n := len(res.Tariffs); n > 0 {
			res.AvgPrice = sumPrice / float64(n)
			res.AvgDays = float64(sumDays) / float64(n)
		} else {
			res.Tariffs = []tariff{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
		log.Println("POST /api/tariffs", req.City, req.Weight, "->", len(res.Tariffs))
	})

	log.Println("fake backend listening on :8000")
	log.Fatal(http.ListenAndServe(":8000", nil))
}
