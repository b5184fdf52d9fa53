package service

import (
	"fmt"

	pb "github.com/kernlab/vitals/proto"

	"golang.org/x/net/context"
)

func errProfileResponse(format string, args ...interface{}) *pb.ProfileResponse {
	return &pb.ProfileResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

// CreateProfile creates and stores a new *pb.Profile object. If successful,
// the identifier of the profile is returned as the response message.
func (s *Service) CreateProfile(ctx context.Context, profile *pb.Profile) (*pb.ProfileResponse, error) {
	if err := s.profiles.Create(profile); err != nil {
		return errProfileResponse("%s", err), nil
	}
	return &pb.ProfileResponse{Success: true, Msg: fmt.Sprintf("%d", profile.Id)}, nil
}

// UpdateProfile updates the contents of a profile with the ones of a raw
// *pb.Profile object given its identifier.
func (s *Service) UpdateProfile(ctx context.Context, profile *pb.Profile) (*pb.ProfileResponse, error) {
	if err := s.profiles.Update(profile); err != nil {
		return errProfileResponse("%s", err), nil
	}
	return &pb.ProfileResponse{Success: true}, nil
}

// ReadProfile returns a raw *pb.Profile object given its identifier.
func (s *Service) ReadProfile(ctx context.Context, query *pb.ById) (*pb.ProfileResponse, error) {
	profile := s.profiles.Find(query.Id)
	if profile == nil {
		return errProfileResponse("profile %d not found.", query.Id), nil
	}
	return &pb.ProfileResponse{Success: true, Profile: profile}, nil
}

// DeleteProfile removes a profile from the storage given its identifier.
func (s *Service) DeleteProfile(ctx context.Context, query *pb.ById) (*pb.ProfileResponse, error) {
	profile := s.profiles.Delete(query.Id)
	if profile == nil {
		return errProfileResponse("profile %d not found.", query.Id), nil
	}
	return &pb.ProfileResponse{Success: true}, nil
}
