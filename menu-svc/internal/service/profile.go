package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"savr/menu-svc/internal/domain"
	"savr/monitoring"

	"go.uber.org/zap"
)

const (
	MessageProfileSaved       = "Profile updated successfully."
	MessageProfileSaveFailed  = "Unable to save restaurant profile."
	MessageDashboardLoadError = "Unable to load restaurant dashboard."
)

type ProfileService struct {
	repo    ProfileRepository
	latency Latency
	loc     *time.Location
	now     func() time.Time
	logger  *zap.SugaredLogger
}

func NewProfileService(repo ProfileRepository, latency Latency, loc *time.Location, logger *zap.SugaredLogger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ProfileService{repo: repo, latency: latency, loc: loc, now: time.Now, logger: logger}
}

func (s *ProfileService) FetchProfile(ctx context.Context) (domain.ProfileView, error) {
	if err := wait(ctx, s.latency.ProfileFetch); err != nil {
		return domain.ProfileView{}, err
	}
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		return domain.ProfileView{}, fmt.Errorf("get profile: %w", err)
	}
	return s.view(profile), nil
}

// SaveProfile replaces the stored profile with update. Opening hours given
// as labels are pinned to today in the panel's time zone.
func (s *ProfileService) SaveProfile(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileView, error) {
	profile := update.RestaurantProfile
	now := s.now().In(s.loc)
	if label := strings.TrimSpace(update.OpenTime); label != "" {
		epoch, err := TimeLabelToEpoch(label, now)
		if err != nil {
			return domain.ProfileView{}, err
		}
		profile.OpenTimeEpoch = epoch
	}
	if label := strings.TrimSpace(update.CloseTime); label != "" {
		epoch, err := TimeLabelToEpoch(label, now)
		if err != nil {
			return domain.ProfileView{}, err
		}
		profile.CloseTimeEpoch = epoch
	}

	if err := wait(ctx, s.latency.ProfileSave); err != nil {
		return domain.ProfileView{}, err
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		monitoring.RecordOperation(serviceName, "save_profile", false)
		return domain.ProfileView{}, fmt.Errorf("save profile: %w", err)
	}
	monitoring.RecordOperation(serviceName, "save_profile", true)
	s.logger.Infow("restaurant profile saved", "store_name", profile.StoreName)
	return s.view(profile), nil
}

func (s *ProfileService) view(profile domain.RestaurantProfile) domain.ProfileView {
	return domain.ProfileView{
		RestaurantProfile: profile,
		OpenTimeLabel:     EpochToTimeLabel(profile.OpenTimeEpoch, s.loc),
		CloseTimeLabel:    EpochToTimeLabel(profile.CloseTimeEpoch, s.loc),
	}
}

var _ ProfileServiceInterface = (*ProfileService)(nil)
