package repositories

import (
	"errors"
	"fiber-ims/models"
	"strings"

	"gorm.io/gorm"
)

var ErrWarehouseNotFound = errors.New("warehouse not found")

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db}
}

func (r *LocationRepository) CreateLocation(warehouseID uint, zone, aisle, bin string) (models.Location, error) {
	if strings.TrimSpace(zone) == "" || strings.TrimSpace(aisle) == "" || strings.TrimSpace(bin) == "" {
		return models.Location{}, errors.New("zone, aisle and bin are required")
	}

	var warehouse models.Warehouse
	if err := r.db.First(&warehouse, warehouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Location{}, ErrWarehouseNotFound
		}
		return models.Location{}, err
	}

	location := models.Location{
		WarehouseID: warehouse.ID,
		Zone:        zone,
		Aisle:       aisle,
		Bin:         bin,
	}

	if err := r.db.Create(&location).Error; err != nil {
		return models.Location{}, err
	}
	return location, nil
}

type listLocation struct {
	LocationID uint   `json:"location_id"`
	Warehouse  string `json:"warehouse"`
	Zone       string `json:"zone"`
	Aisle      string `json:"aisle"`
	Bin        string `json:"bin"`
}

func (r *LocationRepository) GetLocations() ([]listLocation, error) {
	sqlLocations := `SELECT l.id AS location_id, w.name AS warehouse, l.zone, l.aisle, l.bin
	FROM locations l
	INNER JOIN warehouses w ON l.warehouse_id = w.id
	ORDER BY l.id`

	var locations []listLocation
	if err := r.db.Raw(sqlLocations).Scan(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
