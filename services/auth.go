package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"MediCareHub/authentication"
	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/role"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	ContactNumber   string `json:"contactNumber"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	BloodGroup      string `json:"bloodGroup"`
	Address         string `json:"address"`
}

/*
* Check if length less than 7 return error
* Must have upperCase, number, special
 */
func ValidatePasswordRules(password string) error {
	if len(password) < 7 {
		return utils.Invalid("password must be at least 7 characters long")
	}

	hasUpper := false
	hasNumber := false
	hasSpecial := false
	specialChars := "!@#$%^&*()-_=+[]{}|;:',.<>?/`~"

	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= '0' && ch <= '9':
			hasNumber = true
		case strings.ContainsRune(specialChars, ch):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return utils.Invalid("password must contain at least one uppercase letter")
	}
	if !hasNumber {
		return utils.Invalid("password must contain at least one number")
	}
	if !hasSpecial {
		return utils.Invalid("password must contain at least one special character")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hashed, input string) error {
	if strings.TrimSpace(hashed) == "" {
		return errors.New("stored password missing or invalid")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(input)); err != nil {
		return utils.Invalid(utils.PASSWORD_MISMATCH)
	}
	return nil
}

/*
* Validate inputs, hash the password, create the user and the linked
* Doctor or Patient profile in one registration step.
 */
func Register(c *gin.Context, input RegisterInput) (*models.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, utils.Invalid(utils.INVALID_EMAIL)
	}
	if input.Password != input.ConfirmPassword {
		return nil, utils.Invalid(utils.PASSWORDS_DO_NOT_MATCH)
	}
	if err := ValidatePasswordRules(input.Password); err != nil {
		return nil, err
	}
	userRole, err := role.Parse(input.Role)
	if err != nil {
		return nil, utils.Invalid(err.Error())
	}

	users := configuration.OpenCollection(utils.UserCollection)
	var existing models.User
	err = configuration.FindOne(c, users, bson.M{"email": input.Email}, &existing)
	if err == nil {
		return nil, utils.Conflict(utils.EMAIL_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Println("Error from HashPassword: ", err)
		return nil, err
	}

	userID, err := NextSequence(c, utils.UserCollection)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:            userID,
		Email:         input.Email,
		PasswordHash:  hashed,
		Role:          userRole.String(),
		Name:          input.Name,
		DateOfBirth:   input.DateOfBirth,
		ContactNumber: input.ContactNumber,
		Gender:        input.Gender,
		BloodGroup:    input.BloodGroup,
		Address:       input.Address,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	if _, err := configuration.CreateOne(c, users, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict(utils.EMAIL_ALREADY_EXISTS)
		}
		log.Println("Error while creating user: ", err)
		return nil, err
	}

	if err := createLinkedProfile(c, &user, userRole); err != nil {
		return nil, err
	}
	return &user, nil
}

/*
* Registration auto-creates the matching profile: doctors start with a
* default specialty and zero fee, patients inherit the contact fields.
 */
func createLinkedProfile(c *gin.Context, user *models.User, userRole role.Role) error {
	switch userRole {
	case role.Doctor:
		doctorID, err := NextSequence(c, utils.DoctorCollection)
		if err != nil {
			return err
		}
		doctor := models.Doctor{
			ID:              doctorID,
			UserID:          user.ID,
			Name:            user.Name,
			Specialty:       "General Medicine",
			ConsultationFee: 0,
			IsActive:        true,
			CreatedAt:       time.Now(),
		}
		coll := configuration.OpenCollection(utils.DoctorCollection)
		if _, err := configuration.CreateOne(c, coll, doctor); err != nil {
			log.Println("Error while creating doctor profile: ", err)
			return err
		}
	case role.Patient:
		patientID, err := NextSequence(c, utils.PatientCollection)
		if err != nil {
			return err
		}
		patient := models.Patient{
			ID:        patientID,
			UserID:    user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.ContactNumber,
			Birthdate: user.DateOfBirth,
			Address:   user.Address,
			BloodType: user.BloodGroup,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		coll := configuration.OpenCollection(utils.PatientCollection)
		if _, err := configuration.CreateOne(c, coll, patient); err != nil {
			log.Println("Error while creating patient profile: ", err)
			return err
		}
	case role.Admin:
		// admins have no profile record
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

/*
* Find the user, reject deactivated accounts, verify the password and
* issue a jwt carrying (userId, role, email).
 */
func Login(c *gin.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" {
		return nil, utils.Invalid(utils.INVALID_EMAIL)
	}

	users := configuration.OpenCollection(utils.UserCollection)
	var user models.User
	err := configuration.FindOne(c, users, bson.M{"email": input.Email}, &user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound(utils.USER_NOT_FOUND)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, utils.Forbidden(utils.ACCOUNT_DEACTIVATED)
	}
	if err := verifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, err
	}

	userRole, err := role.Parse(user.Role)
	if err != nil {
		return nil, err
	}
	token, err := authentication.GenerateToken(user.ID, userRole, user.Email)
	if err != nil {
		log.Println("Error while generating the token: ", err)
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
