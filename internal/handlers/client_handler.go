package handlers

import (
	"net/http"
	"strings"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

// ListClientsHandler returns clients with optional search over name,
// industry and city, paginated.
func ListClientsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Client{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(industry) LIKE ? OR LOWER(city) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if industry := c.Query("industry"); industry != "" {
		query = query.Where("industry = ?", industry)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count clients"})
		return
	}

	var clients []models.Client
	if err := query.Scopes(Paginate(c)).Order("name asc").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch clients"})
		return
	}
	if clients == nil {
		clients = make([]models.Client, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clients, totalRows))
}

// GetClientHandler returns one client with its contacts.
func GetClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.Preload("Contacts").First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func CreateClientHandler(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(client.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name is required"})
		return
	}
	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

func UpdateClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client name is required"})
		return
	}

	client.Name = input.Name
	client.Industry = input.Industry
	client.Website = input.Website
	client.Address = input.Address
	client.City = input.City
	client.State = input.State
	client.Zip = input.Zip
	client.Tags = input.Tags
	client.Notes = input.Notes

	if err := config.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func DeleteClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err := config.DB.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// --- Contacts ---

// ListContactsHandler returns contacts, optionally filtered to one client.
func ListContactsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Contact{})

	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var contacts []models.Contact
	if err := query.Order("is_primary desc, last_name asc, first_name asc").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contacts"})
		return
	}
	if contacts == nil {
		contacts = make([]models.Contact, 0)
	}
	c.JSON(http.StatusOK, contacts)
}

func CreateContactHandler(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func UpdateContactHandler(c *gin.Context) {
	var contact models.Contact
	if err := config.DB.First(&contact, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	var input models.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Role = input.Role
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.IsPrimary = input.IsPrimary
	contact.Notes = input.Notes

	if err := config.DB.Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func DeleteContactHandler(c *gin.Context) {
	var contact models.Contact
	if err := config.DB.First(&contact, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	if err := config.DB.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
