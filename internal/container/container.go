package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amoakoh/coachdesk/internal/config"
	"github.com/amoakoh/coachdesk/internal/models"
	"github.com/amoakoh/coachdesk/internal/notify"
	"github.com/amoakoh/coachdesk/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	AdminService        *services.AdminService
	AvailabilityService *services.AvailabilityService
	BookingService      *services.BookingService
	BookService         *services.BookService
	CatalogService      *services.CatalogService
	UploadService       *services.UploadService
	ConfigService       *services.SystemConfigService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) (*Container, error) {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey, cfg.ProofBucket)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)

	var notifier notify.Notifier
	if cfg.TelegramToken != "" {
		telegram, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			return nil, err
		}
		notifier = telegram
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	adminService := services.NewAdminService(supa)
	availabilityService := services.NewAvailabilityService(supa)
	bookingService := services.NewBookingService(supa, notifier)
	bookService := services.NewBookService(mongoRepo, cloudinary)
	catalogService := services.NewCatalogService(supa)
	uploadService := services.NewUploadService(supa)
	configService := services.NewSystemConfigService(supa)

	return &Container{
		Logger:              logger,
		Cloudinary:          cloudinary,
		SupabaseClient:      supabaseClient,
		MongoDBClient:       mongoDBClient,
		AdminService:        adminService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		BookService:         bookService,
		CatalogService:      catalogService,
		UploadService:       uploadService,
		ConfigService:       configService,
	}, nil
}
